package occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// BookingRepository бронирования, которые блокируют квартиры
type BookingRepository interface {
	GetBlockingByApartment(ctx context.Context, apartmentID int64, start, end time.Time) ([]*domain.Booking, error)
	HasCheckedIn(ctx context.Context, apartmentID int64) (bool, error)
}

// ApartmentRepository флаг занятости квартиры
type ApartmentRepository interface {
	SetInService(ctx context.Context, id int64, inService bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
