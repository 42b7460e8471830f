package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-PropertyService/pkg/types"
)

// StaffSchedule is one persisted shift of a staff member
type StaffSchedule struct {
	ID         int64
	StaffID    int64
	Day        string // weekday name, e.g. "Monday"
	Hours      float64
	WeekNumber int // 1-based
	Date       time.Time
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	AddedBy    *int64
	CreatedAt  time.Time
}

// TimeRange is a time-of-day window of a shift
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate checks both bounds and start < end
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return WithDetail(ErrInvalidSchedule, "invalid time range start '%s'", r.Start)
	}
	if err := r.End.Validate(); err != nil {
		return WithDetail(ErrInvalidSchedule, "invalid time range end '%s'", r.End)
	}
	if !r.Start.IsBefore(r.End) {
		return WithDetail(ErrInvalidSchedule, "time range %s-%s must end after it starts", r.Start, r.End)
	}
	return nil
}

// ScheduleFilter filters schedule listings
type ScheduleFilter struct {
	StaffID    *int64
	WeekNumber *int
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseWeekday parses an English weekday name case-insensitively
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, WithDetail(ErrInvalidSchedule, "unknown working day '%s'", name)
	}
	return wd, nil
}

// ResolveDate returns the first occurrence of weekday on or after start shifted by week weeks.
// week is 0-based.
func ResolveDate(start time.Time, week int, weekday time.Weekday) time.Time {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	offset := (int(weekday) - int(start.Weekday()) + DaysPerWeek) % DaysPerWeek
	return start.AddDate(0, 0, offset+week*DaysPerWeek)
}

var (
	ErrInvalidSchedule  = NewError(ErrValidation, "invalid schedule parameters")
	ErrScheduleNotFound = NewError(ErrNotFound, "schedule not found")
)
