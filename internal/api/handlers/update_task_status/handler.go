package update_task_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	updateTaskStatus "github.com/m04kA/SMC-PropertyService/internal/usecase/update_task_status"
)

const (
	msgInvalidTaskID      = "некорректный ID задачи"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимая смена статуса задачи"
	msgNotFound           = "задача не найдена"
	msgForbidden          = "доступ запрещен"
	msgConflict           = "конфликт одновременных изменений, повторите запрос"
)

type Handler struct {
	useCase UpdateTaskStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTaskStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tasks/{taskId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	taskID, err := handlers.PathID(r, "taskId")
	if err != nil {
		h.logger.Warn("PATCH /tasks/{id}/status - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tasks/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateTaskStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tasks/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateTaskStatus.Request{
		ActorID: actorID,
		TaskID:  taskID,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateTaskStatus.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/status - Task not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("PATCH /tasks/{id}/status - Access denied: task_id=%d, actor_id=%d", taskID, actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PATCH /tasks/{id}/status - Invalid status change: task_id=%d, error=%v", taskID, err)
			handlers.RespondDomainError(w, err, msgInvalidStatus)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("PATCH /tasks/{id}/status - Serialization conflict: task_id=%d", taskID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PATCH /tasks/{id}/status - Failed to update task: task_id=%d, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/status - Task updated successfully: task_id=%d, status=%s", taskID, result.Task.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
