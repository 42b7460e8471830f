package update_refund_status

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "update_refund_status: invalid input data")

	// ErrRefundNotFound возвращается, когда возврат не найден
	ErrRefundNotFound = domain.NewError(domain.ErrNotFound, "update_refund_status: refund not found")

	// ErrAlreadyProcessed возвращается при изменении уже обработанного возврата
	ErrAlreadyProcessed = domain.NewError(domain.ErrValidation, "update_refund_status: refund already processed")

	// ErrActorNotFound возвращается, когда пользователь из токена не найден
	ErrActorNotFound = domain.NewError(domain.ErrPermission, "update_refund_status: actor not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на возврат
	ErrAccessDenied = domain.NewError(domain.ErrPermission, "update_refund_status: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_refund_status: internal error")
)
