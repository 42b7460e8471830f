package generate_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// ScheduleRepository интерфейс репозитория смен
type ScheduleRepository interface {
	DeleteByStaffInRange(ctx context.Context, staffIDs []int64, from, to time.Time) (int64, error)
	CreateBatch(ctx context.Context, schedules []*domain.StaffSchedule) error
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventRecorder счетчик бизнес-событий
type EventRecorder interface {
	RecordEvent(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
