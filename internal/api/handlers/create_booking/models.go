package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	createBooking "github.com/m04kA/SMC-PropertyService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestID      *int64  `json:"guestId"`
	ApartmentIDs []int64 `json:"apartmentIds"`
	StartDate    string  `json:"startDate"` // RFC3339 или YYYY-MM-DD
	EndDate      string  `json:"endDate"`
	Status       *string `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actorID int64) (*createBooking.Request, error) {
	start, err := handlers.ParseDateTime(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	end, err := handlers.ParseDateTime(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	req := &createBooking.Request{
		ActorID:      actorID,
		GuestID:      r.GuestID,
		ApartmentIDs: r.ApartmentIDs,
		StartDate:    start,
		EndDate:      end,
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
