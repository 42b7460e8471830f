package update_salary_status

import (
	"context"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

type SalaryService interface {
	UpdateStatus(ctx context.Context, actorID, salaryID int64, rawStatus string) (*domain.Salary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
