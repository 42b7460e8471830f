package create_refund

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "create_refund: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "create_refund: booking not found")

	// ErrBookingNotRefundable возвращается, когда статус бронирования не допускает возврат
	ErrBookingNotRefundable = domain.NewError(domain.ErrValidation, "create_refund: booking is not refundable")

	// ErrPriceUnavailable возвращается, когда стоимость бронирования не вычисляется
	ErrPriceUnavailable = domain.NewError(domain.ErrValidation, "create_refund: booking total price is unavailable")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "create_refund: actor not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на бронирование
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "create_refund: access denied")

	// ErrApprovalDenied возвращается, когда ресепшн пытается сразу одобрить возврат
	ErrApprovalDenied = domain.NewError(domain.ErrPermission, "create_refund: approval denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_refund: internal error")
)
