package domain

import "github.com/shopspring/decimal"

// BookingDetails booking with its apartments and derived pricing
type BookingDetails struct {
	Booking      *Booking
	Apartments   []*Apartment
	DurationDays *int
	TotalPrice   *decimal.Decimal
}

// NewBookingDetails derives duration and total price. Both stay nil when unknown.
func NewBookingDetails(b *Booking, apartments []*Apartment) *BookingDetails {
	details := &BookingDetails{
		Booking:    b,
		Apartments: apartments,
		TotalPrice: TotalPrice(b.StartDate, b.EndDate, apartments),
	}
	if days, ok := StayDuration(b.StartDate, b.EndDate); ok {
		details.DurationDays = &days
	}
	return details
}
