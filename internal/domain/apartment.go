package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Apartment represents a bookable unit of a property
type Apartment struct {
	ID         int64
	PropertyID int64
	Number     int
	Name       *string
	Price      *decimal.Decimal // nightly price, nil when not set
	Currency   string
	InService  bool // occupied by a checked-in guest
	Cleaned    bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsBookable returns true if the apartment can be assigned to a new booking
func (a *Apartment) IsBookable() bool {
	return a.IsActive && !a.InService
}
