package update_salary_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/internal/service/salaries"
)

const (
	msgInvalidSalaryID    = "некорректный ID зарплаты"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус зарплаты"
	msgNotFound           = "зарплата не найдена"
	msgForbidden          = "доступ запрещен"
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

// Handle PATCH /api/v1/salaries/{salaryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salaryID, err := handlers.PathID(r, "salaryId")
	if err != nil {
		h.logger.Warn("PATCH /salaries/{id} - Invalid salary ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalaryID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /salaries/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateSalaryStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /salaries/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	salary, err := h.service.UpdateStatus(r.Context(), actorID, salaryID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, salaries.ErrSalaryNotFound):
			h.logger.Warn("PATCH /salaries/{id} - Salary not found: salary_id=%d", salaryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("PATCH /salaries/{id} - Access denied: actor_id=%d", actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PATCH /salaries/{id} - Invalid status: %v", err)
			handlers.RespondDomainError(w, err, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /salaries/{id} - Failed to update salary: salary_id=%d, error=%v", salaryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /salaries/{id} - Salary updated successfully: salary_id=%d, status=%s", salaryID, salary.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSalaryResponse(salary))
}
