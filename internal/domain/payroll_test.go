package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rate(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeSalary(t *testing.T) {
	rules := []*PayRule{
		{ID: 1, UserID: 1, PayType: PaySalaried, PayRate: rate("1000")},
		{ID: 2, UserID: 1, PayType: PayHourly, PayRate: rate("20")},
	}

	b := ComputeSalary(rules, decimal.NewFromInt(120))

	assert.Equal(t, "1040.00", b.Total.StringFixed(2))
	assert.False(t, b.DuplicateRules)
}

func TestComputeSalary_LatestRuleWins(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 6, 0)

	rules := []*PayRule{
		{ID: 1, PayType: PaySalaried, PayRate: rate("900"), UpdatedAt: newer},
		{ID: 2, PayType: PaySalaried, PayRate: rate("700"), UpdatedAt: older},
	}

	b := ComputeSalary(rules, decimal.Zero)

	assert.Equal(t, "900.00", b.Total.StringFixed(2))
	assert.True(t, b.DuplicateRules)
}

func TestComputeSalary_FractionalHours(t *testing.T) {
	rules := []*PayRule{{ID: 1, PayType: PayHourly, PayRate: rate("15")}}

	b := ComputeSalary(rules, decimal.RequireFromString("50"))

	assert.Equal(t, "12.50", b.Total.StringFixed(2))
}

func TestPeriodsOverlap(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC) }

	assert.True(t, PeriodsOverlap(d(1), d(10), d(10), d(20)), "shared boundary day")
	assert.True(t, PeriodsOverlap(d(5), d(6), d(1), d(28)))
	assert.False(t, PeriodsOverlap(d(1), d(9), d(10), d(20)))
}

func TestSalary_SetStatus(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	s := &Salary{Status: SalaryPending}

	s.SetStatus(SalaryPaid, now)
	assert.Equal(t, now, *s.PaidAt)

	s.SetStatus(SalaryPending, now)
	assert.Nil(t, s.PaidAt)
}
