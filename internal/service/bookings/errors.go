package bookings

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "booking not found")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "actor not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
