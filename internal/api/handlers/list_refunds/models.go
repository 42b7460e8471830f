package list_refunds

import (
	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/internal/service/bookings/models"
)

// RefundListResponse возвраты бронирования с остатком
type RefundListResponse struct {
	BookingID  int64                      `json:"bookingId"`
	TotalPrice *string                    `json:"totalPrice"`
	Refunded   string                     `json:"refunded"`
	Remaining  *string                    `json:"remaining"`
	Refunds    []*handlers.RefundResponse `json:"refunds"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(list *models.RefundList) *RefundListResponse {
	resp := &RefundListResponse{
		BookingID: list.BookingID,
		Refunded:  list.Refunded.StringFixed(domain.MoneyScale),
		Refunds:   make([]*handlers.RefundResponse, 0, len(list.Refunds)),
	}
	if list.TotalPrice != nil {
		total := list.TotalPrice.StringFixed(domain.MoneyScale)
		resp.TotalPrice = &total
	}
	if list.Remaining != nil {
		remaining := list.Remaining.StringFixed(domain.MoneyScale)
		resp.Remaining = &remaining
	}
	for _, r := range list.Refunds {
		resp.Refunds = append(resp.Refunds, handlers.NewRefundResponse(r))
	}
	return resp
}
