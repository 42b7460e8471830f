package bookings

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// ApartmentRepository интерфейс репозитория квартир
type ApartmentRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Apartment, error)
}

// RefundRepository интерфейс репозитория возвратов
type RefundRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.Refund, error)
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для чтения в одном снимке данных
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
