package preview_salaries

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
)

// SalaryLineResponse расчет одного сотрудника
type SalaryLineResponse struct {
	UserID           int64  `json:"userId"`
	FullName         string `json:"fullName"`
	Role             string `json:"role"`
	Currency         string `json:"currency"`
	WorkedMinutes    string `json:"workedMinutes"`
	SalariedPay      string `json:"salariedPay"`
	HourlyRate       string `json:"hourlyRate"`
	HourlyPay        string `json:"hourlyPay"`
	TotalSalary      string `json:"totalSalary"`
	OverlapsExisting bool   `json:"overlapsExisting"`
}

// PreviewResponse расчет за период
type PreviewResponse struct {
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	PropertyID   *int64               `json:"propertyId"`
	PropertyName *string              `json:"propertyName"`
	Salaries     []SalaryLineResponse `json:"salaries"`
}

// ToPeriod разбирает query параметры startDate, endDate, propertyId
func ToPeriod(startStr, endStr, propertyIDStr string) (models.Period, error) {
	var period models.Period

	start, err := handlers.ParseDate(startStr)
	if err != nil {
		return period, fmt.Errorf("startDate: %w", err)
	}
	end, err := handlers.ParseDate(endStr)
	if err != nil {
		return period, fmt.Errorf("endDate: %w", err)
	}
	period.StartDate, period.EndDate = start, end

	if propertyIDStr != "" {
		id, err := strconv.ParseInt(propertyIDStr, 10, 64)
		if err != nil || id <= 0 {
			return period, fmt.Errorf("invalid propertyId %q", propertyIDStr)
		}
		period.PropertyID = &id
	}

	return period, nil
}

// FromServiceResponse конвертирует расчет в HTTP response
func FromServiceResponse(result *models.Result) *PreviewResponse {
	resp := &PreviewResponse{
		StartDate:  result.Period.StartDate.Format(domain.DateFormat),
		EndDate:    result.Period.EndDate.Format(domain.DateFormat),
		PropertyID: result.Period.PropertyID,
		Salaries:   make([]SalaryLineResponse, 0, len(result.Lines)),
	}
	if result.Property != nil {
		resp.PropertyName = &result.Property.Name
	}
	for _, line := range result.Lines {
		b := line.Breakdown
		resp.Salaries = append(resp.Salaries, SalaryLineResponse{
			UserID:           line.User.ID,
			FullName:         line.User.FullName(),
			Role:             string(line.User.Role),
			Currency:         line.User.Currency,
			WorkedMinutes:    b.WorkedMinutes.String(),
			SalariedPay:      b.SalariedPay.StringFixed(domain.MoneyScale),
			HourlyRate:       b.HourlyRate.StringFixed(domain.MoneyScale),
			HourlyPay:        b.HourlyPay.StringFixed(domain.MoneyScale),
			TotalSalary:      b.Total.StringFixed(domain.MoneyScale),
			OverlapsExisting: line.OverlapsExisting,
		})
	}
	return resp
}
