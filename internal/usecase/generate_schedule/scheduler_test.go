package generate_schedule

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/types"
)

var weekdaysFull = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestBuildSlots_EvenDistribution(t *testing.T) {
	tests := []struct {
		name        string
		weeks       int
		staffPerDay int
		perStaff    int
	}{
		{"one per day over two weeks", 2, 1, 2},
		{"two per day over one week", 1, 2, 2},
		{"three per day over five weeks", 5, 3, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.ScheduleConfig{
				StaffIDs:    []int64{1, 2, 3, 4, 5},
				Weeks:       tt.weeks,
				WorkingDays: weekdaysFull,
				DailyHours:  8,
				StaffPerDay: tt.staffPerDay,
				StartDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			}

			slots := buildSlots(cfg, seeded(42))

			require.Len(t, slots, cfg.TotalSlots())
			counts := domain.AssignmentCounts(slots)
			require.Len(t, counts, 5)
			for staffID, n := range counts {
				assert.Equal(t, tt.perStaff, n, "staff %d", staffID)
			}
		})
	}
}

func TestBuildSlots_NoDoubleShiftsPerDay(t *testing.T) {
	cfg := &domain.ScheduleConfig{
		StaffIDs:    []int64{1, 2, 3, 4},
		Weeks:       2,
		WorkingDays: weekdaysFull,
		DailyHours:  6,
		StaffPerDay: 2,
		StartDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}

	byDate := make(map[time.Time]map[int64]bool)
	for _, s := range buildSlots(cfg, seeded(7)) {
		if byDate[s.Date] == nil {
			byDate[s.Date] = make(map[int64]bool)
		}
		assert.False(t, byDate[s.Date][s.StaffID], "staff %d twice on %s", s.StaffID, s.Date)
		byDate[s.Date][s.StaffID] = true
	}
	assert.Len(t, byDate, 10)
}

func TestBuildSlots_ReusesStaffWhenPoolIsSmall(t *testing.T) {
	cfg := &domain.ScheduleConfig{
		StaffIDs:    []int64{1, 2},
		Weeks:       1,
		WorkingDays: []string{"Monday"},
		DailyHours:  4,
		StaffPerDay: 4,
		StartDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}

	counts := domain.AssignmentCounts(buildSlots(cfg, seeded(1)))

	assert.Equal(t, map[int64]int{1: 2, 2: 2}, counts)
}

func TestBuildSlots_SeededRunsAreIdentical(t *testing.T) {
	cfg := &domain.ScheduleConfig{
		StaffIDs:    []int64{10, 20, 30},
		Weeks:       3,
		WorkingDays: []string{"Monday", "Wednesday", "Friday"},
		DailyHours:  8,
		StaffPerDay: 1,
		StartDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	first := buildSlots(cfg, seeded(99))
	second := buildSlots(cfg, seeded(99))

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].StaffID, second[i].StaffID)
		assert.Equal(t, first[i].Date, second[i].Date)
	}
}

func TestBuildSlots_DatesAndTimeRanges(t *testing.T) {
	morning := domain.TimeRange{Start: types.TimeString("08:00"), End: types.TimeString("14:00")}
	evening := domain.TimeRange{Start: types.TimeString("14:00"), End: types.TimeString("20:00")}
	cfg := &domain.ScheduleConfig{
		StaffIDs:    []int64{1, 2},
		Weeks:       2,
		WorkingDays: []string{"monday", "Friday"},
		DailyHours:  6,
		StaffPerDay: 2,
		// среда
		StartDate:  time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		TimeRanges: []domain.TimeRange{morning, evening},
	}

	slots := buildSlots(cfg, seeded(3))

	require.Len(t, slots, 8)
	assert.Equal(t, "Monday", slots[0].Day)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), slots[0].Date)
	assert.Equal(t, 1, slots[0].WeekNumber)
	assert.Equal(t, "Friday", slots[2].Day)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), slots[2].Date)
	assert.Equal(t, 2, slots[4].WeekNumber)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), slots[4].Date)

	for i, s := range slots {
		require.NotNil(t, s.TimeRange)
		if i%2 == 0 {
			assert.Equal(t, morning, *s.TimeRange)
		} else {
			assert.Equal(t, evening, *s.TimeRange)
		}
	}
}
