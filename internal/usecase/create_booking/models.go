package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// Request входные данные для создания бронирования
type Request struct {
	ActorID      int64
	GuestID      *int64
	ApartmentIDs []int64
	StartDate    time.Time
	EndDate      time.Time
	Status       *domain.BookingStatus // по умолчанию upcoming
}

// Response созданное бронирование с квартирами и расчетом стоимости
type Response struct {
	Booking *domain.BookingDetails
}
