package generate_schedule

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	generateSchedule "github.com/m04kA/SMC-PropertyService/internal/usecase/generate_schedule"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgInvalidSchedule    = "некорректные параметры расписания"
	msgStaffNotFound      = "сотрудники не найдены"
	msgForbidden          = "доступ запрещен"
	msgConflict           = "конфликт одновременных изменений, повторите запрос"
)

type Handler struct {
	useCase GenerateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GenerateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "POST /schedules/generate", http.StatusCreated, h.useCase.Execute)
}

// HandlePreview POST /api/v1/schedules/preview
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "POST /schedules/preview", http.StatusOK, h.useCase.Preview)
}

type runFunc func(ctx context.Context, req *generateSchedule.Request) (*generateSchedule.Response, error)

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, route string, okStatus int, run runFunc) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req GenerateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID)
	if err != nil {
		h.logger.Warn("%s - Failed to parse request: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := run(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSchedule.ErrStaffNotFound):
			h.logger.Warn("%s - Staff not found: staff=%v", route, req.StaffIDs)
			handlers.RespondDomainError(w, err, msgStaffNotFound)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("%s - Access denied: actor_id=%d", route, actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("%s - Validation failed: %v", route, err)
			handlers.RespondDomainError(w, err, msgInvalidSchedule)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("%s - Serialization conflict: actor_id=%d", route, actorID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("%s - Failed to build schedule: actor_id=%d, error=%v", route, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Suggestion != nil {
		h.logger.Info("%s - Schedule infeasible: actor_id=%d, reason=%s", route, actorID, result.Suggestion.Reason)
		handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("%s - Schedule built successfully: actor_id=%d, shifts=%d, replaced=%d",
		route, actorID, len(result.Schedules), result.Replaced)
	handlers.RespondJSON(w, okStatus, FromUseCaseResponse(result))
}
