package create_refund

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	createRefund "github.com/m04kA/SMC-PropertyService/internal/usecase/create_refund"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRefund      = "некорректные параметры возврата"
	msgExceedsBalance     = "сумма возврата превышает доступный остаток"
	msgNotRefundable      = "по бронированию в текущем статусе нельзя оформить возврат"
	msgPriceUnavailable   = "стоимость бронирования не определена"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgConflict           = "конфликт одновременных изменений, повторите запрос"
)

type Handler struct {
	useCase CreateRefundUseCase
	logger  Logger
}

func NewHandler(useCase CreateRefundUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/refunds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/refunds - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/refunds - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRefundRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/refunds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID, bookingID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/refunds - Invalid status: %v", err)
		handlers.RespondDomainError(w, err, msgInvalidRefund)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRefund.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/refunds - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrRefundExceedsBalance):
			h.logger.Warn("POST /bookings/{id}/refunds - Exceeds balance: booking_id=%d, amount=%s", bookingID, req.Amount)
			handlers.RespondDomainError(w, err, msgExceedsBalance)

		case errors.Is(err, createRefund.ErrBookingNotRefundable):
			h.logger.Warn("POST /bookings/{id}/refunds - Not refundable: booking_id=%d", bookingID)
			handlers.RespondDomainError(w, err, msgNotRefundable)

		case errors.Is(err, createRefund.ErrPriceUnavailable):
			h.logger.Warn("POST /bookings/{id}/refunds - Price unavailable: booking_id=%d", bookingID)
			handlers.RespondDomainError(w, err, msgPriceUnavailable)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("POST /bookings/{id}/refunds - Access denied: booking_id=%d, actor_id=%d", bookingID, actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /bookings/{id}/refunds - Validation failed: %v", err)
			handlers.RespondDomainError(w, err, msgInvalidRefund)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /bookings/{id}/refunds - Serialization conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /bookings/{id}/refunds - Failed to create refund: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/refunds - Refund created successfully: refund_id=%d, booking_id=%d, cancelled=%t",
		result.Refund.ID, bookingID, result.BookingCancelled)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
