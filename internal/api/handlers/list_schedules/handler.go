package list_schedules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректные параметры запроса"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
// Query params: staffId, week (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	filter, err := ToFilter(r.URL.Query().Get("staffId"), r.URL.Query().Get("week"))
	if err != nil {
		h.logger.Warn("GET /schedules - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	schedules, err := h.service.List(r.Context(), actorID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("GET /schedules - Access denied: actor_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /schedules - Failed to list schedules: actor_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules - Schedules retrieved successfully: actor_id=%d, count=%d", actorID, len(schedules))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewScheduleResponses(schedules))
}
