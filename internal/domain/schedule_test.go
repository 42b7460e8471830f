package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDate(t *testing.T) {
	// 2025-03-05 is a Wednesday
	start := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), ResolveDate(start, 0, time.Wednesday))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), ResolveDate(start, 0, time.Monday))
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), ResolveDate(start, 1, time.Monday))
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), ResolveDate(start, 0, time.Sunday))
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday(" friday ")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, wd)

	_, err = ParseWeekday("Funday")
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func weekdaysConfig(staff int, weeks, perDay int) *ScheduleConfig {
	ids := make([]int64, staff)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	return &ScheduleConfig{
		StaffIDs:    ids,
		Weeks:       weeks,
		WorkingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		DailyHours:  8,
		StaffPerDay: perDay,
		StartDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestCheckFeasibility(t *testing.T) {
	infeasible := weekdaysConfig(3, 1, 2)
	require.NoError(t, infeasible.Validate(12))

	s := infeasible.CheckFeasibility(12)
	require.NotNil(t, s)
	assert.InDelta(t, 10.0/3.0, s.RequiredSlotsPerStaff, 1e-9)
	require.NotNil(t, s.SuggestedWeeks)
	assert.Equal(t, 3, *s.SuggestedWeeks)
	require.NotNil(t, s.SuggestedStaffCount)
	assert.Equal(t, 2, *s.SuggestedStaffCount)
	require.NotNil(t, s.SuggestedStaffPerDay)
	assert.Equal(t, 3, *s.SuggestedStaffPerDay)

	assert.Nil(t, weekdaysConfig(5, 1, 2).CheckFeasibility(12))
}

func TestCheckFeasibility_TimeRanges(t *testing.T) {
	cfg := weekdaysConfig(5, 1, 2)
	cfg.TimeRanges = []TimeRange{{Start: "08:00", End: "16:00"}}

	s := cfg.CheckFeasibility(12)
	require.NotNil(t, s)
	assert.Contains(t, s.Reason, "exceeds the number of time ranges")
	assert.Nil(t, s.SuggestedWeeks)
	require.NotNil(t, s.SuggestedStaffPerDay)
	assert.Equal(t, 1, *s.SuggestedStaffPerDay)
}

func TestScheduleConfig_Validate(t *testing.T) {
	cfg := weekdaysConfig(2, 1, 1)
	cfg.WorkingDays = []string{"Monday", "monday"}
	assert.ErrorIs(t, cfg.Validate(12), ErrInvalidSchedule)

	cfg = weekdaysConfig(2, 13, 1)
	assert.ErrorIs(t, cfg.Validate(12), ErrInvalidSchedule)

	cfg = weekdaysConfig(2, 1, 1)
	cfg.TimeRanges = []TimeRange{{Start: "18:00", End: "09:00"}}
	assert.ErrorIs(t, cfg.Validate(12), ErrInvalidSchedule)

	cfg = weekdaysConfig(2, 1, MaxStaffPerDay+1)
	assert.ErrorIs(t, cfg.Validate(12), ErrInvalidSchedule)

	cfg = weekdaysConfig(2, 1, 1<<62)
	assert.ErrorIs(t, cfg.Validate(12), ErrInvalidSchedule)

	cfg = weekdaysConfig(2, 1, MaxStaffPerDay)
	assert.NoError(t, cfg.Validate(12))
}

func TestScheduleConfig_EndDate(t *testing.T) {
	cfg := weekdaysConfig(2, 2, 1)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), cfg.EndDate())
}
