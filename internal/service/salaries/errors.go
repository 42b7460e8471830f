package salaries

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrSalaryNotFound возвращается, когда зарплата не найдена
	ErrSalaryNotFound = domain.NewError(domain.ErrNotFound, "salary not found")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "actor not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
