package generate_schedule

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	generateSchedule "github.com/m04kA/SMC-PropertyService/internal/usecase/generate_schedule"
	"github.com/m04kA/SMC-PropertyService/pkg/types"
)

// TimeRangeRequest окно смены "HH:MM" - "HH:MM"
type TimeRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GenerateScheduleRequest HTTP request model
type GenerateScheduleRequest struct {
	StaffIDs    []int64            `json:"staffIds"`
	Weeks       int                `json:"weeks"`
	WorkingDays []string           `json:"workingDays"`
	DailyHours  float64            `json:"dailyHours"`
	StaffPerDay int                `json:"staffPerDay"`
	StartDate   string             `json:"startDate"` // YYYY-MM-DD
	TimeRanges  []TimeRangeRequest `json:"timeRanges,omitempty"`
}

// SuggestionResponse как сделать запрос выполнимым
type SuggestionResponse struct {
	Reason                string  `json:"reason"`
	SuggestedWeeks        *int    `json:"suggestedWeeks"`
	SuggestedStaffCount   *int    `json:"suggestedStaffCount"`
	SuggestedStaffPerDay  *int    `json:"suggestedStaffPerDay"`
	RequiredSlotsPerStaff float64 `json:"requiredSlotsPerStaff"`
}

// ScheduleResultResponse результат генерации или предпросмотра
type ScheduleResultResponse struct {
	Feasible      bool                        `json:"feasible"`
	Suggestion    *SuggestionResponse         `json:"suggestion,omitempty"`
	Schedules     []handlers.ScheduleResponse `json:"schedules"`
	HoursPerStaff map[string]float64          `json:"hoursPerStaff"`
	Replaced      int64                       `json:"replaced"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateScheduleRequest) ToUseCaseRequest(actorID int64) (*generateSchedule.Request, error) {
	start, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	ranges := make([]domain.TimeRange, 0, len(r.TimeRanges))
	for i, tr := range r.TimeRanges {
		from, err := types.NewTimeStringFromString(tr.Start)
		if err != nil {
			return nil, fmt.Errorf("timeRanges[%d].start: %w", i, err)
		}
		to, err := types.NewTimeStringFromString(tr.End)
		if err != nil {
			return nil, fmt.Errorf("timeRanges[%d].end: %w", i, err)
		}
		ranges = append(ranges, domain.TimeRange{Start: from, End: to})
	}

	return &generateSchedule.Request{
		ActorID: actorID,
		Config: domain.ScheduleConfig{
			StaffIDs:    r.StaffIDs,
			Weeks:       r.Weeks,
			WorkingDays: r.WorkingDays,
			DailyHours:  r.DailyHours,
			StaffPerDay: r.StaffPerDay,
			StartDate:   start,
			TimeRanges:  ranges,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSchedule.Response) *ScheduleResultResponse {
	result := &ScheduleResultResponse{
		Feasible:      resp.Suggestion == nil,
		Schedules:     handlers.NewScheduleResponses(resp.Schedules),
		HoursPerStaff: make(map[string]float64, len(resp.HoursPerStaff)),
		Replaced:      resp.Replaced,
	}
	if s := resp.Suggestion; s != nil {
		result.Suggestion = &SuggestionResponse{
			Reason:                s.Reason,
			SuggestedWeeks:        s.SuggestedWeeks,
			SuggestedStaffCount:   s.SuggestedStaffCount,
			SuggestedStaffPerDay:  s.SuggestedStaffPerDay,
			RequiredSlotsPerStaff: s.RequiredSlotsPerStaff,
		}
	}

	for id, hours := range resp.HoursPerStaff {
		result.HoursPerStaff[strconv.FormatInt(id, 10)] = hours
	}

	return result
}
