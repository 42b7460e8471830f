package domain

import (
	"fmt"
	"slices"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusUpcoming   BookingStatus = "upcoming"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusActive     BookingStatus = "active"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// AllBookingStatuses lists every known status
var AllBookingStatuses = []BookingStatus{
	StatusUpcoming,
	StatusConfirmed,
	StatusActive,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !slices.Contains(AllBookingStatuses, status) {
		return "", WithDetail(ErrInvalidBookingStatus, "unknown booking status '%s'", s)
	}
	return status, nil
}

// Booking is a reservation of one or more apartments for a guest over [StartDate, EndDate)
type Booking struct {
	ID                int64
	GuestID           *int64
	ApartmentIDs      []int64
	StartDate         time.Time
	EndDate           time.Time
	DateOfReservation time.Time
	Status            BookingStatus

	AddedBy    *int64
	CheckInBy  *int64
	CheckOutBy *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksApartments returns true if the booking takes part in overlap checks
func (b *Booking) BlocksApartments() bool {
	return !slices.Contains(OverlapExcludedStatuses, b.Status)
}

// IsCheckedIn returns true while the guest occupies the apartments
func (b *Booking) IsCheckedIn() bool {
	return b.Status == StatusCheckedIn
}

// IsRefundable returns true if refunds may be requested for the booking
func (b *Booking) IsRefundable() bool {
	return slices.Contains(RefundableBookingStatuses, b.Status)
}

// HasApartment returns true if the apartment is assigned to the booking
func (b *Booking) HasApartment(apartmentID int64) bool {
	return slices.Contains(b.ApartmentIDs, apartmentID)
}

// ValidateDates checks start < end
func ValidateDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return WithDetail(ErrInvalidBookingDates, "start and end dates are required")
	}
	if !start.Before(end) {
		return WithDetail(ErrInvalidBookingDates, "end date must be after start date")
	}
	return nil
}

// FormatRange formats a booking range for user-facing messages
func FormatRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
}

var (
	ErrInvalidBookingStatus = NewError(ErrValidation, "invalid booking status")
	ErrInvalidBookingDates  = NewError(ErrValidation, "invalid booking dates")
	ErrInvalidTransition    = NewError(ErrValidation, "invalid booking status transition")
	ErrBookingOverlap       = NewError(ErrValidation, "apartment is already booked for the selected dates")
)
