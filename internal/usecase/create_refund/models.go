package create_refund

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// Request входные данные для создания возврата
type Request struct {
	ActorID   int64
	BookingID int64
	Amount    decimal.Decimal
	Reason    string
	Status    *domain.RefundStatus // по умолчанию pending
}

// Response созданный возврат
type Response struct {
	Refund           *domain.Refund
	BookingCancelled bool
}
