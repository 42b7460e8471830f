package save_salaries

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/internal/service/payroll"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidRequest     = "некорректные параметры сохранения зарплат"
	msgPropertyNotFound   = "объект недвижимости не найден"
	msgForbidden          = "доступ запрещен"
	msgConflict           = "конфликт одновременных изменений, повторите запрос"
)

type Handler struct {
	useCase SaveSalariesUseCase
	logger  Logger
}

func NewHandler(useCase SaveSalariesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salaries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /salaries - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SaveSalariesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salaries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID)
	if err != nil {
		h.logger.Warn("POST /salaries - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrPropertyNotFound):
			h.logger.Warn("POST /salaries - Property not found: property_id=%v", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("POST /salaries - Access denied: actor_id=%d", actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /salaries - Validation failed: %v", err)
			handlers.RespondDomainError(w, err, msgInvalidRequest)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /salaries - Serialization conflict: actor_id=%d", actorID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /salaries - Failed to save salaries: actor_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salaries - Salaries saved: actor_id=%d, saved=%d, skipped=%d",
		actorID, len(result.Saved), len(result.Errors))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
