package save_salaries

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	payrollModels "github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
)

// PayrollCalculator расчет зарплат за период
type PayrollCalculator interface {
	Calculate(ctx context.Context, period payrollModels.Period, userIDs []int64) (*payrollModels.Result, error)
}

// SalaryRepository интерфейс репозитория зарплат
type SalaryRepository interface {
	Create(ctx context.Context, salary *domain.Salary) (*domain.Salary, error)
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
