package generate_schedule

import (
	"fmt"
	"slices"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxWeeks int) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	return req.Config.Validate(maxWeeks)
}

// missingStaff возвращает ID сотрудников, которых нет среди найденных пользователей
func missingStaff(requested []int64, found []*domain.User) []int64 {
	var missing []int64
	for _, id := range requested {
		if !slices.ContainsFunc(found, func(u *domain.User) bool { return u.ID == id }) {
			missing = append(missing, id)
		}
	}
	return missing
}
