package update_booking

import (
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// Request частичное обновление бронирования. nil поля не меняются.
type Request struct {
	ActorID      int64
	BookingID    int64
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *domain.BookingStatus
	ApartmentIDs []int64
}

// Response обновленное бронирование с квартирами и расчетом стоимости
type Response struct {
	Booking *domain.BookingDetails
}
