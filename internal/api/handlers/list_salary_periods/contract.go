package list_salary_periods

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

type SalaryService interface {
	ListPeriods(ctx context.Context, actorID int64) ([]*domain.SalaryPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
