package list_salary_periods

import "github.com/m04kA/SMC-PropertyService/internal/domain"

// PeriodResponse сохраненный расчетный период
type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Count     int    `json:"count"`
}

// FromServiceResponse конвертирует периоды в HTTP response
func FromServiceResponse(periods []*domain.SalaryPeriod) []PeriodResponse {
	resp := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		resp = append(resp, PeriodResponse{
			StartDate: p.StartDate.Format(domain.DateFormat),
			EndDate:   p.EndDate.Format(domain.DateFormat),
			Count:     p.Count,
		})
	}
	return resp
}
