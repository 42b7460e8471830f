package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// StayDuration returns the number of charged days: partial days round up.
// ok is false when the range is missing or not positive.
func StayDuration(start, end time.Time) (days int, ok bool) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0, false
	}

	d := end.Sub(start)
	days = int(d / day)
	if d%day != 0 {
		days++
	}
	return days, true
}

// TotalPrice is the sum of duration × nightly price over apartments rounded to cents.
// Returns nil when the duration or any apartment price is unknown.
func TotalPrice(start, end time.Time, apartments []*Apartment) *decimal.Decimal {
	days, ok := StayDuration(start, end)
	if !ok || len(apartments) == 0 {
		return nil
	}

	total := decimal.Zero
	nights := decimal.NewFromInt(int64(days))
	for _, apt := range apartments {
		if apt == nil || apt.Price == nil {
			return nil
		}
		total = total.Add(apt.Price.Mul(nights))
	}

	total = total.Round(MoneyScale)
	return &total
}
