package save_salaries

import (
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if err := domain.ValidatePeriod(req.StartDate, req.EndDate); err != nil {
		return err
	}

	if len(req.UserIDs) == 0 {
		return domain.WithDetail(ErrInvalidInput, "start_date, end_date and salaries are required")
	}

	for _, id := range req.UserIDs {
		if id <= 0 {
			return domain.WithDetail(ErrInvalidInput, "user id must be positive")
		}
	}

	if req.PropertyID != nil && *req.PropertyID <= 0 {
		return domain.WithDetail(ErrInvalidInput, "property id must be positive")
	}

	return nil
}
