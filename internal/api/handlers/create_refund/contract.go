package create_refund

import (
	"context"

	createRefund "github.com/m04kA/SMC-PropertyService/internal/usecase/create_refund"
)

type CreateRefundUseCase interface {
	Execute(ctx context.Context, req *createRefund.Request) (*createRefund.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
