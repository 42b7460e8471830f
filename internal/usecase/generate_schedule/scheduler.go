package generate_schedule

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// buildSlots распределяет смены жадно: на каждый день сотрудники перемешиваются
// и стабильно сортируются по числу смен, затем слоты получают наименее занятые
// сотрудники, еще не работающие в этот день. Если сотрудников на день не хватает,
// повторно берется наименее занятый.
func buildSlots(cfg *domain.ScheduleConfig, rnd *rand.Rand) []*domain.ScheduleSlot {
	counts := make(map[int64]int, len(cfg.StaffIDs))
	for _, id := range cfg.StaffIDs {
		counts[id] = 0
	}

	byCount := func(a, b int64) int {
		return cmp.Compare(counts[a], counts[b])
	}

	slots := make([]*domain.ScheduleSlot, 0, cfg.TotalSlots())
	pool := slices.Clone(cfg.StaffIDs)

	for week := 0; week < cfg.Weeks; week++ {
		for _, day := range cfg.WorkingDays {
			// Validate уже проверил названия дней
			weekday, _ := domain.ParseWeekday(day)
			date := domain.ResolveDate(cfg.StartDate, week, weekday)

			rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
			slices.SortStableFunc(pool, byCount)

			used := make(map[int64]bool, cfg.StaffPerDay)
			for i := 0; i < cfg.StaffPerDay; i++ {
				staffID := pickStaff(pool, used, counts)
				used[staffID] = true
				counts[staffID]++

				slot := &domain.ScheduleSlot{
					StaffID:    staffID,
					Day:        weekday.String(),
					WeekNumber: week + 1,
					Date:       date,
				}
				if len(cfg.TimeRanges) > 0 {
					r := cfg.TimeRanges[i%len(cfg.TimeRanges)]
					slot.TimeRange = &r
				}
				slots = append(slots, slot)
			}
		}
	}

	return slots
}

// pickStaff первый по порядку сотрудник, свободный в этот день, иначе наименее занятый
func pickStaff(pool []int64, used map[int64]bool, counts map[int64]int) int64 {
	for _, id := range pool {
		if !used[id] {
			return id
		}
	}

	best := pool[0]
	for _, id := range pool[1:] {
		if counts[id] < counts[best] {
			best = id
		}
	}
	return best
}
