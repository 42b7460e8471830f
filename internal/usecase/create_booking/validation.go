package create_booking

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

	if len(req.ApartmentIDs) == 0 {
		return domain.WithDetail(ErrInvalidInput, "at least one apartment is required")
	}

	for _, id := range req.ApartmentIDs {
		if id <= 0 {
			return domain.WithDetail(ErrInvalidInput, "apartment id must be positive")
		}
	}

	if req.GuestID != nil && *req.GuestID <= 0 {
		return domain.WithDetail(ErrInvalidInput, "guest id must be positive")
	}

	return domain.ValidateDates(req.StartDate, req.EndDate)
}

// resolveStatus возвращает начальный статус и проверяет его относительно текущего времени
func resolveStatus(requested *domain.BookingStatus, start, now time.Time) (domain.BookingStatus, error) {
	status := domain.StatusUpcoming
	if requested != nil {
		status = *requested
	}

	if !slices.Contains(domain.InitialBookingStatuses, status) {
		return "", domain.WithDetail(ErrInvalidStatus, "booking cannot be created with status '%s'", status)
	}

	switch status {
	case domain.StatusCheckedIn:
		if start.After(now) {
			return "", domain.WithDetail(ErrInvalidStatus, "You cannot check in when start date is in the future")
		}
	case domain.StatusUpcoming:
		if start.Before(now) {
			return "", domain.WithDetail(ErrInvalidStatus, "Upcoming booking cannot start in the past")
		}
	}

	return status, nil
}

// validateApartments проверяет, что все квартиры найдены и доступны для бронирования
func validateApartments(requested []int64, apartments []*domain.Apartment) error {
	found := make(map[int64]*domain.Apartment, len(apartments))
	for _, apt := range apartments {
		found[apt.ID] = apt
	}

	for _, id := range requested {
		apt, ok := found[id]
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

// uniqueIDs убирает повторяющиеся ID, сохраняя порядок
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
