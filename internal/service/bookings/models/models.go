package models

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// RefundList возвраты бронирования и остаток к возврату.
// TotalPrice и Remaining nil, если стоимость бронирования не вычисляется.
type RefundList struct {
	BookingID  int64
	Refunds    []*domain.Refund
	TotalPrice *decimal.Decimal
	Refunded   decimal.Decimal
	Remaining  *decimal.Decimal
}

// NewRefundList считает суммы по возвратам
func NewRefundList(bookingID int64, refunds []*domain.Refund, total *decimal.Decimal) *RefundList {
	list := &RefundList{
		BookingID:  bookingID,
		Refunds:    refunds,
		TotalPrice: total,
		Refunded:   domain.RefundedAmount(refunds),
	}
	if total != nil {
		remaining := total.Sub(list.Refunded)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		list.Remaining = &remaining
	}
	return list
}
