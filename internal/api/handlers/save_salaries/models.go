package save_salaries

import (
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	saveSalaries "github.com/m04kA/SMC-PropertyService/internal/usecase/save_salaries"
)

// SaveSalariesRequest HTTP request model. Суммы не принимаются, они пересчитываются.
type SaveSalariesRequest struct {
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	PropertyID *int64  `json:"propertyId,omitempty"`
	UserIDs    []int64 `json:"userIds"`
}

// UserErrorResponse пропущенный сотрудник
type UserErrorResponse struct {
	UserID int64  `json:"userId"`
	Error  string `json:"error"`
}

// SaveSalariesResponse результат сохранения
type SaveSalariesResponse struct {
	Saved  []handlers.SalaryResponse `json:"saved"`
	Errors []UserErrorResponse       `json:"errors"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveSalariesRequest) ToUseCaseRequest(actorID int64) (*saveSalaries.Request, error) {
	start, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	end, err := handlers.ParseDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &saveSalaries.Request{
		ActorID:    actorID,
		StartDate:  start,
		EndDate:    end,
		PropertyID: r.PropertyID,
		UserIDs:    r.UserIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveSalaries.Response) *SaveSalariesResponse {
	result := &SaveSalariesResponse{
		Saved:  make([]handlers.SalaryResponse, 0, len(resp.Saved)),
		Errors: make([]UserErrorResponse, 0, len(resp.Errors)),
	}
	for _, s := range resp.Saved {
		result.Saved = append(result.Saved, handlers.NewSalaryResponse(s))
	}
	for _, e := range resp.Errors {
		result.Errors = append(result.Errors, UserErrorResponse{UserID: e.UserID, Error: e.Message})
	}
	return result
}
