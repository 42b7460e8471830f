package preview_salaries

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/internal/service/payroll"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidParams    = "некорректные параметры запроса, даты ожидаются в формате YYYY-MM-DD"
	msgInvalidPeriod    = "некорректный расчетный период"
	msgPropertyNotFound = "объект недвижимости не найден"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/salaries/preview
// Query params: startDate, endDate, propertyId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /salaries/preview - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	q := r.URL.Query()
	period, err := ToPeriod(q.Get("startDate"), q.Get("endDate"), q.Get("propertyId"))
	if err != nil {
		h.logger.Warn("GET /salaries/preview - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.Preview(r.Context(), actorID, period)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrPropertyNotFound):
			h.logger.Warn("GET /salaries/preview - Property not found: property_id=%v", period.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("GET /salaries/preview - Access denied: actor_id=%d", actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /salaries/preview - Invalid period: %v", err)
			handlers.RespondDomainError(w, err, msgInvalidPeriod)

		default:
			h.logger.Error("GET /salaries/preview - Failed to calculate salaries: actor_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salaries/preview - Salaries calculated successfully: actor_id=%d, count=%d", actorID, len(result.Lines))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
