package update_task_status

import (
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает новый статус
func validateRequest(req *Request) (domain.TaskStatus, error) {
	if req.ActorID <= 0 {
		return "", fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.TaskID <= 0 {
		return "", fmt.Errorf("%w: taskID must be positive", ErrInvalidInput)
	}

	return domain.ParseTaskStatus(req.Status)
}
