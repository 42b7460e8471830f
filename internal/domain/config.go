package domain

import (
	"fmt"
	"slices"
	"time"
)

// ScheduleConfig parameters of a schedule generation run
type ScheduleConfig struct {
	StaffIDs    []int64
	Weeks       int
	WorkingDays []string
	DailyHours  float64
	StaffPerDay int
	StartDate   time.Time
	TimeRanges  []TimeRange
}

// Validate checks the shape of the parameters. Feasibility is checked separately.
func (c *ScheduleConfig) Validate(maxWeeks int) error {
	if len(c.StaffIDs) == 0 {
		return WithDetail(ErrInvalidSchedule, "staff ids are required")
	}
	for i, id := range c.StaffIDs {
		if id <= 0 {
			return WithDetail(ErrInvalidSchedule, "staff id must be positive")
		}
		if slices.Contains(c.StaffIDs[:i], id) {
			return WithDetail(ErrInvalidSchedule, "duplicate staff id %d", id)
		}
	}
	if len(c.WorkingDays) == 0 {
		return WithDetail(ErrInvalidSchedule, "working days are required")
	}
	seen := make(map[time.Weekday]bool, len(c.WorkingDays))
	for _, d := range c.WorkingDays {
		wd, err := ParseWeekday(d)
		if err != nil {
			return err
		}
		if seen[wd] {
			return WithDetail(ErrInvalidSchedule, "duplicate working day '%s'", d)
		}
		seen[wd] = true
	}
	if c.Weeks <= 0 || c.Weeks > maxWeeks {
		return WithDetail(ErrInvalidSchedule, "weeks must be between 1 and %d", maxWeeks)
	}
	if c.DailyHours <= 0 || c.DailyHours > MaxDailyHours {
		return WithDetail(ErrInvalidSchedule, "daily hours must be in (0, %d]", MaxDailyHours)
	}
	if c.StaffPerDay <= 0 || c.StaffPerDay > MaxStaffPerDay {
		return WithDetail(ErrInvalidSchedule, "staff per day must be between 1 and %d", MaxStaffPerDay)
	}
	if c.StartDate.IsZero() {
		return WithDetail(ErrInvalidSchedule, "start date is required")
	}
	for _, r := range c.TimeRanges {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TotalSlots number of (day, slot) assignments the schedule needs
func (c *ScheduleConfig) TotalSlots() int {
	return len(c.WorkingDays) * c.Weeks * c.StaffPerDay
}

// StartDay start date truncated to midnight
func (c *ScheduleConfig) StartDay() time.Time {
	return time.Date(c.StartDate.Year(), c.StartDate.Month(), c.StartDate.Day(), 0, 0, 0, 0, c.StartDate.Location())
}

// EndDate last calendar day covered by the generated weeks
func (c *ScheduleConfig) EndDate() time.Time {
	return c.StartDay().AddDate(0, 0, c.Weeks*DaysPerWeek-1)
}

// ScheduleSuggestion explains how to make an infeasible request feasible
type ScheduleSuggestion struct {
	Reason                string
	SuggestedWeeks        *int
	SuggestedStaffCount   *int
	SuggestedStaffPerDay  *int
	RequiredSlotsPerStaff float64
}

// CheckFeasibility returns nil when a perfectly balanced schedule exists.
// An infeasible request returns a suggestion, never an error.
func (c *ScheduleConfig) CheckFeasibility(maxWeeks int) *ScheduleSuggestion {
	staff := len(c.StaffIDs)
	total := c.TotalSlots()

	rangesOK := len(c.TimeRanges) == 0 || c.StaffPerDay <= len(c.TimeRanges)
	if rangesOK && total%staff == 0 {
		return nil
	}

	s := &ScheduleSuggestion{
		RequiredSlotsPerStaff: float64(total) / float64(staff),
	}
	if !rangesOK {
		s.Reason = fmt.Sprintf("Staff per day (%d) exceeds the number of time ranges (%d)", c.StaffPerDay, len(c.TimeRanges))
	} else {
		s.Reason = fmt.Sprintf("Total available slots (%d) cannot be evenly divided among %d staff members", total, staff)
	}

	days := len(c.WorkingDays)

	if rangesOK {
		for w := c.Weeks + 1; w <= maxWeeks; w++ {
			if (days*w*c.StaffPerDay)%staff == 0 {
				s.SuggestedWeeks = &w
				break
			}
		}
		n := nearestDivisor(total, staff)
		s.SuggestedStaffCount = &n
	}

	maxPerDay := staff
	if len(c.TimeRanges) > 0 {
		maxPerDay = len(c.TimeRanges)
	}
	if spd, ok := nearestStaffPerDay(days*c.Weeks, staff, c.StaffPerDay, maxPerDay); ok {
		s.SuggestedStaffPerDay = &spd
	}

	return s
}

// nearestDivisor divisor of total closest to n, the larger one on ties
func nearestDivisor(total, n int) int {
	best := 1
	for d := 1; d <= total; d++ {
		if total%d != 0 {
			continue
		}
		if abs(d-n) <= abs(best-n) {
			best = d
		}
	}
	return best
}

// nearestStaffPerDay closest staff-per-day value in [1, limit] giving an even split
func nearestStaffPerDay(days, staff, current, limit int) (int, bool) {
	best, found := 0, false
	for spd := 1; spd <= limit; spd++ {
		if (days*spd)%staff != 0 {
			continue
		}
		if !found || abs(spd-current) < abs(best-current) {
			best, found = spd, true
		}
	}
	return best, found
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
