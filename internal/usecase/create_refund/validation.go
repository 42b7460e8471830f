package create_refund

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает запрошенный статус
func validateRequest(req *Request) (domain.RefundStatus, error) {
	if req.ActorID <= 0 {
		return "", fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return "", domain.WithDetail(ErrInvalidInput, "booking id must be positive")
	}

	// сумма хранится с точностью до копеек
	if !req.Amount.Round(domain.MoneyScale).IsPositive() {
		return "", domain.WithDetail(ErrInvalidInput, "Refund amount must be greater than zero")
	}

	if strings.TrimSpace(req.Reason) == "" {
		return "", domain.WithDetail(ErrInvalidInput, "Refund reason is required")
	}

	if utf8.RuneCountInString(req.Reason) > domain.MaxRefundReasonLength {
		return "", domain.WithDetail(ErrInvalidInput, "Refund reason must be at most %d characters", domain.MaxRefundReasonLength)
	}

	status := domain.RefundPending
	if req.Status != nil {
		status = *req.Status
	}
	if status != domain.RefundPending && status != domain.RefundApproved {
		return "", domain.WithDetail(ErrInvalidInput, "Refund can only be created as 'pending' or 'approved'")
	}

	return status, nil
}
