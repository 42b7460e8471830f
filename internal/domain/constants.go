package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxRefundReasonLength = 1000
	MaxScheduleWeeks      = 52
	MaxDailyHours         = 24
	MaxStaffPerDay        = 100
	MoneyScale            = 2
	DaysPerWeek           = 7
)

// OverlapExcludedStatuses bookings in these statuses never block an apartment.
// The same set is used for single- and multi-apartment bookings.
var OverlapExcludedStatuses = []BookingStatus{
	StatusCancelled,
	StatusCheckedOut,
}

// InitialBookingStatuses statuses a booking may be created with.
var InitialBookingStatuses = []BookingStatus{
	StatusUpcoming,
	StatusConfirmed,
	StatusActive,
	StatusCheckedIn,
}

// RefundableBookingStatuses booking statuses that accept refund requests.
var RefundableBookingStatuses = []BookingStatus{
	StatusCancelled,
	StatusCheckedOut,
	StatusConfirmed,
	StatusUpcoming,
}

// BalanceRefundStatuses refund statuses counted against the booking total.
var BalanceRefundStatuses = []RefundStatus{
	RefundApproved,
	RefundPending,
}
