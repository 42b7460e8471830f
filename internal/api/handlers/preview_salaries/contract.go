package preview_salaries

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
)

type SalaryService interface {
	Preview(ctx context.Context, actorID int64, period models.Period) (*models.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
