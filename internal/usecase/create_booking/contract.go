package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	SetApartments(ctx context.Context, bookingID int64, apartmentIDs []int64) error
}

// ApartmentRepository интерфейс репозитория квартир
type ApartmentRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Apartment, error)
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// OccupancyService проверка пересечений и пересчет занятости
type OccupancyService interface {
	CheckApartments(ctx context.Context, apartments []*domain.Apartment, start, end time.Time, excludeBookingID int64) error
	Recompute(ctx context.Context, apartmentIDs []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// EventRecorder счетчик бизнес-событий
type EventRecorder interface {
	RecordEvent(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
