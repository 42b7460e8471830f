package list_schedules

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// ToFilter разбирает query параметры staffId и week
func ToFilter(staffIDStr, weekStr string) (domain.ScheduleFilter, error) {
	var filter domain.ScheduleFilter

	if staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			return filter, fmt.Errorf("invalid staffId %q", staffIDStr)
		}
		filter.StaffID = &staffID
	}

	if weekStr != "" {
		week, err := strconv.Atoi(weekStr)
		if err != nil || week <= 0 {
			return filter, fmt.Errorf("invalid week %q", weekStr)
		}
		filter.WeekNumber = &week
	}

	return filter, nil
}
