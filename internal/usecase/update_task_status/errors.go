package update_task_status

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "update_task_status: invalid input")

	// ErrTaskNotFound возвращается, когда задача не найдена
	ErrTaskNotFound = domain.NewError(domain.ErrNotFound, "update_task_status: task not found")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "update_task_status: actor not found")

	// ErrAccessDenied возвращается, когда пользователь не исполнитель и не автор задачи
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "update_task_status: access denied")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("update_task_status: internal error")
)
