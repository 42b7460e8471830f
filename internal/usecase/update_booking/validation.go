package update_booking

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return domain.WithDetail(ErrInvalidInput, "booking id must be positive")
	}

	if req.ApartmentIDs != nil && len(req.ApartmentIDs) == 0 {
		return domain.WithDetail(ErrInvalidInput, "at least one apartment is required")
	}

	for _, id := range req.ApartmentIDs {
		if id <= 0 {
			return domain.WithDetail(ErrInvalidInput, "apartment id must be positive")
		}
	}

	return nil
}

// applyChanges применяет запрос к копии бронирования и проверяет переход статуса
func applyChanges(current *domain.Booking, req *Request, actorID int64, now time.Time) (*domain.Booking, error) {
	if current.Status == domain.StatusCheckedOut {
		return nil, domain.WithDetail(domain.ErrInvalidTransition, "Cannot modify a checked-out booking.")
	}

	updated := *current
	updated.ApartmentIDs = slices.Clone(current.ApartmentIDs)

	if req.StartDate != nil {
		updated.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		updated.EndDate = *req.EndDate
	}
	if err := domain.ValidateDates(updated.StartDate, updated.EndDate); err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := domain.ValidateTransition(current.Status, *req.Status); err != nil {
			return nil, err
		}
		updated.Status = *req.Status
	}

	if updated.Status != current.Status {
		switch updated.Status {
		case domain.StatusCheckedIn:
			if err := domain.ValidateCheckIn(updated.StartDate, now); err != nil {
				return nil, err
			}
			updated.CheckInBy = &actorID
		case domain.StatusCheckedOut:
			updated.CheckOutBy = &actorID
		}
	}

	if req.ApartmentIDs != nil {
		next := uniqueSorted(req.ApartmentIDs)
		if !slices.Equal(next, uniqueSorted(current.ApartmentIDs)) {
			if current.IsCheckedIn() {
				return nil, domain.WithDetail(ErrApartmentsLocked, "Cannot change apartments of a checked-in booking.")
			}
			updated.ApartmentIDs = next
		}
	}

	return &updated, nil
}

// validateAddedApartments проверяет квартиры, которых раньше не было в бронировании
func validateAddedApartments(added []int64, byID map[int64]*domain.Apartment) error {
	for _, id := range added {
		apt, ok := byID[id]
		if !ok {
			return domain.WithDetail(ErrApartmentNotFound, "Apartment id=%d not found", id)
		}
		if !apt.IsActive {
			return domain.WithDetail(ErrApartmentUnavailable, "Apartment %d is not active", apt.Number)
		}
		if apt.InService {
			return domain.WithDetail(ErrApartmentUnavailable, "Apartment %d is currently occupied", apt.Number)
		}
	}
	return nil
}

// pick возвращает квартиры в порядке ids, пропуская ненайденные
func pick(ids []int64, byID map[int64]*domain.Apartment) []*domain.Apartment {
	result := make([]*domain.Apartment, 0, len(ids))
	for _, id := range ids {
		if apt, ok := byID[id]; ok {
			result = append(result, apt)
		}
	}
	return result
}

// difference возвращает элементы next, которых нет в prev
func difference(next, prev []int64) []int64 {
	var result []int64
	for _, id := range next {
		if !slices.Contains(prev, id) {
			result = append(result, id)
		}
	}
	return result
}

func uniqueSorted(ids []int64) []int64 {
	result := slices.Clone(ids)
	slices.Sort(result)
	return slices.Compact(result)
}
