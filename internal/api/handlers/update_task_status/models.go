package update_task_status

import (
	"time"

	updateTaskStatus "github.com/m04kA/SMC-PropertyService/internal/usecase/update_task_status"
)

// UpdateTaskStatusRequest HTTP request model
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse задача после смены статуса
type TaskResponse struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	Status              string  `json:"status"`
	AssigneeIDs         []int64 `json:"assigneeIds"`
	ApartmentIDs        []int64 `json:"apartmentIds"`
	CleanedApartmentIDs []int64 `json:"cleanedApartmentIds"`
	UpdatedAt           string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateTaskStatus.Response) *TaskResponse {
	t := resp.Task
	cleaned := resp.CleanedApartmentIDs
	if cleaned == nil {
		cleaned = []int64{}
	}
	return &TaskResponse{
		ID:                  t.ID,
		Title:               t.Title,
		Status:              string(t.Status),
		AssigneeIDs:         t.AssigneeIDs,
		ApartmentIDs:        t.ApartmentIDs,
		CleanedApartmentIDs: cleaned,
		UpdatedAt:           t.UpdatedAt.Format(time.RFC3339),
	}
}
