package update_refund_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	updateRefundStatus "github.com/m04kA/SMC-PropertyService/internal/usecase/update_refund_status"
)

const (
	msgInvalidRefundID    = "некорректный ID возврата"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус возврата"
	msgAlreadyProcessed   = "возврат уже обработан"
	msgNotFound           = "возврат не найден"
	msgForbidden          = "доступ запрещен"
	msgConflict           = "конфликт одновременных изменений, повторите запрос"
)

type Handler struct {
	useCase UpdateRefundStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateRefundStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/refunds/{refundId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	refundID, err := handlers.PathID(r, "refundId")
	if err != nil {
		h.logger.Warn("PATCH /refunds/{id} - Invalid refund ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRefundID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /refunds/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateRefundStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /refunds/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, err := domain.ParseRefundStatus(req.Status)
	if err != nil {
		h.logger.Warn("PATCH /refunds/{id} - Invalid status: %v", err)
		handlers.RespondDomainError(w, err, msgInvalidStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateRefundStatus.Request{
		ActorID:  actorID,
		RefundID: refundID,
		Status:   status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateRefundStatus.ErrRefundNotFound):
			h.logger.Warn("PATCH /refunds/{id} - Refund not found: refund_id=%d", refundID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateRefundStatus.ErrAlreadyProcessed):
			h.logger.Warn("PATCH /refunds/{id} - Already processed: refund_id=%d", refundID)
			handlers.RespondDomainError(w, err, msgAlreadyProcessed)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("PATCH /refunds/{id} - Access denied: refund_id=%d, actor_id=%d", refundID, actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PATCH /refunds/{id} - Validation failed: %v", err)
			handlers.RespondDomainError(w, err, msgInvalidStatus)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("PATCH /refunds/{id} - Serialization conflict: refund_id=%d", refundID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PATCH /refunds/{id} - Failed to update refund: refund_id=%d, error=%v", refundID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /refunds/{id} - Refund processed successfully: refund_id=%d, status=%s, cancelled=%t",
		refundID, result.Refund.Status, result.BookingCancelled)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
