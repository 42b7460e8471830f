package save_salaries

import (
	"context"

	saveSalaries "github.com/m04kA/SMC-PropertyService/internal/usecase/save_salaries"
)

type SaveSalariesUseCase interface {
	Execute(ctx context.Context, req *saveSalaries.Request) (*saveSalaries.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
