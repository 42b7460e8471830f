package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// TaskRepository источник отработанных минут
type TaskRepository interface {
	GetCompletedMinutesByUser(ctx context.Context, start, end time.Time, propertyID *int64) (map[int64]decimal.Decimal, error)
}

// PayRuleRepository интерфейс репозитория ставок
type PayRuleRepository interface {
	GetByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]*domain.PayRule, error)
}

// SalaryRepository интерфейс репозитория зарплат
type SalaryRepository interface {
	GetOverlappingUserIDs(ctx context.Context, userIDs []int64, start, end time.Time) (map[int64]bool, error)
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.User, error)
}

// PropertyRepository интерфейс справочника объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
