package list_refunds

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/service/bookings/models"
)

type BookingService interface {
	ListRefunds(ctx context.Context, bookingID int64, actorID int64) (*models.RefundList, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
