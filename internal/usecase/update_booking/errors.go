package update_booking

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "update_booking: booking not found")

	// ErrApartmentNotFound возвращается, когда часть квартир не найдена
	ErrApartmentNotFound = domain.NewError(domain.ErrNotFound, "update_booking: apartment not found")

	// ErrApartmentUnavailable возвращается, когда добавляемая квартира неактивна или занята
	ErrApartmentUnavailable = domain.NewError(domain.ErrValidation, "update_booking: apartment is not available")

	// ErrApartmentsLocked возвращается при попытке сменить квартиры заселенного бронирования
	ErrApartmentsLocked = domain.NewError(domain.ErrValidation, "update_booking: apartments cannot change while checked in")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "update_booking: actor not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на бронирование
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "update_booking: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
