package update_task_status

import (
	"context"

	updateTaskStatus "github.com/m04kA/SMC-PropertyService/internal/usecase/update_task_status"
)

type UpdateTaskStatusUseCase interface {
	Execute(ctx context.Context, req *updateTaskStatus.Request) (*updateTaskStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
