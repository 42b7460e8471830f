package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RefundStatus represents the status of a refund
type RefundStatus string

const (
	RefundPending  RefundStatus = "pending"
	RefundApproved RefundStatus = "approved"
	RefundRejected RefundStatus = "rejected"
)

// Refund is money returned to a guest for a booking
type Refund struct {
	ID          int64
	GuestID     *int64
	BookingID   int64
	Amount      decimal.Decimal
	Reason      string
	Status      RefundStatus
	ProcessedBy *int64
	ProcessedAt *time.Time
	UpdatedBy   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ParseRefundStatus validates a raw status value
func ParseRefundStatus(s string) (RefundStatus, error) {
	status := RefundStatus(s)
	switch status {
	case RefundPending, RefundApproved, RefundRejected:
		return status, nil
	default:
		return "", WithDetail(ErrInvalidRefund, "unknown refund status '%s'", s)
	}
}

// CountsTowardsBalance returns true if the refund reduces the refundable balance
func (r *Refund) CountsTowardsBalance() bool {
	return slices.Contains(BalanceRefundStatuses, r.Status)
}

// Approve stamps processing fields
func (r *Refund) Approve(actorID int64, now time.Time) {
	r.Status = RefundApproved
	r.ProcessedBy = &actorID
	r.ProcessedAt = &now
	r.UpdatedBy = &actorID
}

// Reject stamps processing fields
func (r *Refund) Reject(actorID int64, now time.Time) {
	r.Status = RefundRejected
	r.ProcessedBy = &actorID
	r.ProcessedAt = &now
	r.UpdatedBy = &actorID
}

// RefundedAmount sums refunds counted towards the balance
func RefundedAmount(refunds []*Refund) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range refunds {
		if r.CountsTowardsBalance() {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// ValidateRefundAmount checks that refunded + amount stays within total
func ValidateRefundAmount(total, refunded, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return WithDetail(ErrInvalidRefund, "refund amount must be positive")
	}

	if refunded.Add(amount).GreaterThan(total) {
		remaining := total.Sub(refunded)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		return WithDetail(ErrRefundExceedsBalance,
			"refund amount exceeds available balance, maximum refundable: %s", remaining.StringFixed(MoneyScale))
	}

	return nil
}

// IsFullRefund returns true when amount covers the whole booking total
func IsFullRefund(total, amount decimal.Decimal) bool {
	return amount.Round(MoneyScale).Equal(total.Round(MoneyScale))
}

var (
	ErrInvalidRefund        = NewError(ErrValidation, "invalid refund")
	ErrRefundExceedsBalance = NewError(ErrValidation, "refund exceeds booking balance")
)
