package list_salary_periods

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service SalaryService
	logger  Logger
}

func NewHandler(service SalaryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salaries/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salaries/periods - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	periods, err := h.service.ListPeriods(r.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("GET /salaries/periods - Access denied: actor_id=%d", actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		default:
			h.logger.Error("GET /salaries/periods - Failed to list periods: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salaries/periods - Periods retrieved successfully: count=%d", len(periods))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(periods))
}
