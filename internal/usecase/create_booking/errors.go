package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "create_booking: invalid input data")

	// ErrInvalidStatus возвращается, когда бронирование нельзя создать в указанном статусе
	ErrInvalidStatus = domain.NewError(domain.ErrValidation, "create_booking: invalid initial status")

	// ErrApartmentNotFound возвращается, когда часть квартир не найдена
	ErrApartmentNotFound = domain.NewError(domain.ErrNotFound, "create_booking: apartment not found")

	// ErrApartmentUnavailable возвращается, когда квартира неактивна или занята
	ErrApartmentUnavailable = domain.NewError(domain.ErrValidation, "create_booking: apartment is not available")

	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = domain.NewError(domain.ErrNotFound, "create_booking: guest not found")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "create_booking: actor not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на квартиры
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "create_booking: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
