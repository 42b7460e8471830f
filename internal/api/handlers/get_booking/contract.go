package get_booking

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, actorID int64) (*domain.BookingDetails, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
