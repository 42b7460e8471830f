package update_refund_status

import (
	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	updateRefundStatus "github.com/m04kA/SMC-PropertyService/internal/usecase/update_refund_status"
)

// UpdateRefundStatusRequest HTTP request model
type UpdateRefundStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRefundStatusResponse обработанный возврат
type UpdateRefundStatusResponse struct {
	Refund           *handlers.RefundResponse `json:"refund"`
	BookingCancelled bool                     `json:"bookingCancelled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateRefundStatus.Response) *UpdateRefundStatusResponse {
	return &UpdateRefundStatusResponse{
		Refund:           handlers.NewRefundResponse(resp.Refund),
		BookingCancelled: resp.BookingCancelled,
	}
}
