package metrics

// Имена бизнес-событий
const (
	EventBookingCreated    = "booking_created"
	EventBookingUpdated    = "booking_updated"
	EventRefundCreated     = "refund_created"
	EventRefundProcessed   = "refund_processed"
	EventScheduleGenerated = "schedule_generated"
	EventScheduleRejected  = "schedule_infeasible"
	EventSalariesSaved     = "salaries_saved"
	EventTaskCompleted     = "task_completed"
)

// EventRecorder потребитель бизнес-счетчиков
type EventRecorder interface {
	RecordEvent(event string)
}

// NopRecorder используется, когда метрики выключены
type NopRecorder struct{}

// RecordEvent ничего не делает
func (NopRecorder) RecordEvent(string) {}
