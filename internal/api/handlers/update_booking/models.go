package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	updateBooking "github.com/m04kA/SMC-PropertyService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model, отсутствующие поля не меняются
type UpdateBookingRequest struct {
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	Status       *string `json:"status,omitempty"`
	ApartmentIDs []int64 `json:"apartmentIds,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actorID, bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		ActorID:      actorID,
		BookingID:    bookingID,
		ApartmentIDs: r.ApartmentIDs,
	}

	var err error
	if req.StartDate, err = parseOptional(r.StartDate); err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	if req.EndDate, err = parseOptional(r.EndDate); err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}

	return req, nil
}

func parseOptional(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := handlers.ParseDateTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
