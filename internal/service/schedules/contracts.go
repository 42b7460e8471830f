package schedules

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// ScheduleRepository интерфейс репозитория смен
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffSchedule, error)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffSchedule, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
