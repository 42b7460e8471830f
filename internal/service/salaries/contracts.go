package salaries

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
)

// SalaryRepository интерфейс репозитория зарплат
type SalaryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salary, error)
	UpdateStatus(ctx context.Context, salary *domain.Salary) error
	ListPeriods(ctx context.Context) ([]*domain.SalaryPeriod, error)
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// PayrollCalculator расчет зарплат за период
type PayrollCalculator interface {
	Calculate(ctx context.Context, period models.Period, userIDs []int64) (*models.Result, error)
}

// TransactionManager интерфейс для чтения в одном снимке данных
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
