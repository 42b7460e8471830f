package list_schedules

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

type ScheduleService interface {
	List(ctx context.Context, actorID int64, filter domain.ScheduleFilter) ([]*domain.StaffSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
