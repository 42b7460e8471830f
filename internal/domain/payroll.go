package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayType compensation basis
type PayType string

const (
	PayHourly   PayType = "hourly"
	PaySalaried PayType = "salaried"
)

// PayRule a user's compensation rule. One rule per (user, pay type).
type PayRule struct {
	ID        int64
	UserID    int64
	PayType   PayType
	PayRate   *decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalaryStatus payment status of a saved salary
type SalaryStatus string

const (
	SalaryPending SalaryStatus = "pending"
	SalaryPaid    SalaryStatus = "paid"
)

// ParseSalaryStatus validates a raw status value
func ParseSalaryStatus(s string) (SalaryStatus, error) {
	switch SalaryStatus(s) {
	case SalaryPending, SalaryPaid:
		return SalaryStatus(s), nil
	default:
		return "", WithDetail(ErrInvalidSalary, "unknown salary status '%s'", s)
	}
}

// Salary a saved payroll computation for [StartDate, EndDate], both inclusive
type Salary struct {
	ID          int64
	UserID      int64
	PropertyID  *int64
	TotalSalary decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	Status      SalaryStatus
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SetStatus moves the salary between pending and paid, stamping PaidAt
func (s *Salary) SetStatus(status SalaryStatus, now time.Time) {
	s.Status = status
	if status == SalaryPaid {
		s.PaidAt = &now
	} else {
		s.PaidAt = nil
	}
}

// SalaryPeriod distinct saved period with the number of salaries in it
type SalaryPeriod struct {
	StartDate time.Time
	EndDate   time.Time
	Count     int
}

// PeriodsOverlap inclusive date range intersection
func PeriodsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// ValidatePeriod checks start <= end
func ValidatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return WithDetail(ErrInvalidSalary, "start and end dates are required")
	}
	if start.After(end) {
		return WithDetail(ErrInvalidSalary, "start date must not be after end date")
	}
	return nil
}

// SalaryBreakdown result of applying pay rules to worked minutes
type SalaryBreakdown struct {
	SalariedPay    decimal.Decimal
	HourlyRate     decimal.Decimal
	HourlyPay      decimal.Decimal
	WorkedMinutes  decimal.Decimal
	Total          decimal.Decimal
	DuplicateRules bool
}

var sixty = decimal.NewFromInt(60)

// ComputeSalary total = salaried rate + hourly rate × minutes / 60, rounded to cents.
// When a user has several rules of one type, the most recently updated one wins.
func ComputeSalary(rules []*PayRule, workedMinutes decimal.Decimal) SalaryBreakdown {
	latest := make(map[PayType]*PayRule, 2)
	duplicates := false

	for _, r := range rules {
		if r.PayRate == nil {
			continue
		}
		current, ok := latest[r.PayType]
		if ok {
			duplicates = true
			if !isNewer(r, current) {
				continue
			}
		}
		latest[r.PayType] = r
	}

	b := SalaryBreakdown{
		SalariedPay:    decimal.Zero,
		HourlyRate:     decimal.Zero,
		WorkedMinutes:  workedMinutes,
		DuplicateRules: duplicates,
	}
	if r, ok := latest[PaySalaried]; ok {
		b.SalariedPay = *r.PayRate
	}
	if r, ok := latest[PayHourly]; ok {
		b.HourlyRate = *r.PayRate
	}

	b.HourlyPay = b.HourlyRate.Mul(workedMinutes).Div(sixty)
	b.Total = b.SalariedPay.Add(b.HourlyPay).Round(MoneyScale)
	return b
}

func isNewer(a, b *PayRule) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.ID > b.ID
}

var (
	ErrInvalidSalary  = NewError(ErrValidation, "invalid salary parameters")
	ErrSalaryNotFound = NewError(ErrNotFound, "salary not found")
)
