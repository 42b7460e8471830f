package save_salaries

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "save_salaries: invalid input data")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "save_salaries: actor not found")

	// ErrAccessDenied возвращается, когда зарплаты сохраняет не администратор
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "save_salaries: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_salaries: internal error")
)
