package update_refund_status

import (
	"context"

	updateRefundStatus "github.com/m04kA/SMC-PropertyService/internal/usecase/update_refund_status"
)

type UpdateRefundStatusUseCase interface {
	Execute(ctx context.Context, req *updateRefundStatus.Request) (*updateRefundStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
