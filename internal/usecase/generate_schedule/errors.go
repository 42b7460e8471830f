package generate_schedule

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "generate_schedule: invalid input data")

	// ErrStaffNotFound возвращается, когда часть сотрудников не найдена
	ErrStaffNotFound = domain.NewError(domain.ErrNotFound, "generate_schedule: staff not found")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "generate_schedule: actor not found")

	// ErrAccessDenied возвращается, когда расписание пытается создать не админ и не менеджер
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "generate_schedule: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_schedule: internal error")
)
