package domain

import (
	"slices"
	"time"
)

// bookingTransitions allowed status changes. A no-op change is always allowed.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusUpcoming:   {StatusCheckedIn, StatusCancelled, StatusActive, StatusConfirmed},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled, StatusActive, StatusUpcoming},
	StatusActive:     {StatusCheckedIn, StatusCancelled, StatusConfirmed, StatusUpcoming},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {StatusConfirmed, StatusUpcoming, StatusActive},
}

// ValidateTransition checks that a booking may move from one status to another
func ValidateTransition(from, to BookingStatus) error {
	if from == to {
		return nil
	}

	if slices.Contains(bookingTransitions[from], to) {
		return nil
	}

	switch from {
	case StatusCheckedIn:
		return WithDetail(ErrInvalidTransition, "Cannot change status from 'checked_in'. Only check-out is allowed.")
	case StatusCheckedOut:
		return WithDetail(ErrInvalidTransition, "Cannot modify a checked-out booking.")
	default:
		return WithDetail(ErrInvalidTransition, "Cannot change status from '%s' to '%s'.", from, to)
	}
}

// ValidateCheckIn checks-in are only possible once the stay has started
func ValidateCheckIn(start, now time.Time) error {
	if start.After(now) {
		return WithDetail(ErrInvalidTransition, "Cannot check in before the booking start date.")
	}
	return nil
}
