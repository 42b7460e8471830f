package update_refund_status

import "github.com/m04kA/SMC-PropertyService/internal/domain"

// Request входные данные для обработки возврата
type Request struct {
	ActorID  int64
	RefundID int64
	Status   domain.RefundStatus
}

// Response обработанный возврат
type Response struct {
	Refund           *domain.Refund
	BookingCancelled bool
}
