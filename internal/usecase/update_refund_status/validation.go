package update_refund_status

import (
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.RefundID <= 0 {
		return domain.WithDetail(ErrInvalidInput, "refund id must be positive")
	}

	if req.Status != domain.RefundApproved && req.Status != domain.RefundRejected {
		return domain.WithDetail(ErrInvalidInput, "Refund status can only be set to 'approved' or 'rejected'")
	}

	return nil
}
