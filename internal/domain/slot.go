package domain

import (
	"time"
)

// ScheduleSlot is one (staff, day, time range) assignment produced by the scheduler
type ScheduleSlot struct {
	StaffID    int64
	Day        string
	WeekNumber int // 1-based
	Date       time.Time
	TimeRange  *TimeRange // nil when the schedule has no time ranges
}

// ToStaffSchedule converts the slot into a persisted shift
func (s *ScheduleSlot) ToStaffSchedule(hours float64, addedBy int64) *StaffSchedule {
	schedule := &StaffSchedule{
		StaffID:    s.StaffID,
		Day:        s.Day,
		Hours:      hours,
		WeekNumber: s.WeekNumber,
		Date:       s.Date,
		AddedBy:    &addedBy,
	}
	if s.TimeRange != nil {
		start, end := s.TimeRange.Start, s.TimeRange.End
		schedule.StartTime = &start
		schedule.EndTime = &end
	}
	return schedule
}

// AssignmentCounts returns the number of slots per staff member
func AssignmentCounts(slots []*ScheduleSlot) map[int64]int {
	counts := make(map[int64]int)
	for _, s := range slots {
		counts[s.StaffID]++
	}
	return counts
}

// HoursDistribution returns worked hours per staff member
func HoursDistribution(slots []*ScheduleSlot, hours float64) map[int64]float64 {
	distribution := make(map[int64]float64)
	for staffID, n := range AssignmentCounts(slots) {
		distribution[staffID] = float64(n) * hours
	}
	return distribution
}
