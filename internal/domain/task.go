package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// ParseTaskStatus validates a raw status value
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return TaskStatus(s), nil
	default:
		return "", WithDetail(ErrInvalidTaskStatus, "unknown task status '%s'", s)
	}
}

// Task is a cleaning or technical work item
type Task struct {
	ID              int64
	Title           string
	Status          TaskStatus
	DurationMinutes *decimal.Decimal
	PropertyID      *int64
	AssigneeIDs     []int64
	ApartmentIDs    []int64
	AddedBy         *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAssignedTo returns true if the user is one of the assignees
func (t *Task) IsAssignedTo(userID int64) bool {
	return slices.Contains(t.AssigneeIDs, userID)
}

// IsCreatedBy returns true if the user created the task
func (t *Task) IsCreatedBy(userID int64) bool {
	return t.AddedBy != nil && *t.AddedBy == userID
}

// ValidateTaskTransition checks a status change. Only admins may touch completed tasks.
func ValidateTaskTransition(from, to TaskStatus, isAdmin bool) error {
	if from == TaskCompleted && !isAdmin {
		return WithDetail(ErrInvalidTaskStatus, "Completed tasks cannot be modified.")
	}
	if from == TaskPending && to == TaskCompleted {
		return WithDetail(ErrInvalidTaskStatus, "Cannot complete a pending task without progress.")
	}
	return nil
}

var (
	ErrInvalidTaskStatus = NewError(ErrValidation, "invalid task status")
	ErrTaskNotFound      = NewError(ErrNotFound, "task not found")
)
