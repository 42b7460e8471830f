package create_refund

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	createRefund "github.com/m04kA/SMC-PropertyService/internal/usecase/create_refund"
)

// CreateRefundRequest HTTP request model. amount принимается строкой или числом.
type CreateRefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
	Status *string         `json:"status,omitempty"`
}

// CreateRefundResponse созданный возврат
type CreateRefundResponse struct {
	Refund           *handlers.RefundResponse `json:"refund"`
	BookingCancelled bool                     `json:"bookingCancelled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRefundRequest) ToUseCaseRequest(actorID, bookingID int64) (*createRefund.Request, error) {
	req := &createRefund.Request{
		ActorID:   actorID,
		BookingID: bookingID,
		Amount:    r.Amount,
		Reason:    r.Reason,
	}
	if r.Status != nil {
		status, err := domain.ParseRefundStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRefund.Response) *CreateRefundResponse {
	return &CreateRefundResponse{
		Refund:           handlers.NewRefundResponse(resp.Refund),
		BookingCancelled: resp.BookingCancelled,
	}
}
