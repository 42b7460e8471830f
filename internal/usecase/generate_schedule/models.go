package generate_schedule

import "github.com/m04kA/SMC-PropertyService/internal/domain"

// Request параметры генерации расписания
type Request struct {
	ActorID int64
	Config  domain.ScheduleConfig
}

// Response результат генерации или предпросмотра.
// Если Suggestion не nil, расписание невыполнимо и ничего не создано.
type Response struct {
	Suggestion    *domain.ScheduleSuggestion
	Schedules     []*domain.StaffSchedule
	HoursPerStaff map[int64]float64
	Replaced      int64 // удаленные смены, только для генерации
}
