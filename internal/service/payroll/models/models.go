package models

import (
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// Period расчетный период, даты включительно
type Period struct {
	StartDate  time.Time
	EndDate    time.Time
	PropertyID *int64
}

// Line расчет зарплаты одного сотрудника
type Line struct {
	User             *domain.User
	Breakdown        domain.SalaryBreakdown
	OverlapsExisting bool
}

// Result расчет за период
type Result struct {
	Period   Period
	Property *domain.Property
	Lines    []*Line
}
