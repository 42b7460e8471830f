package save_salaries

import (
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// Request сохранение зарплат за период. Суммы пересчитываются на сервере.
type Request struct {
	ActorID    int64
	StartDate  time.Time
	EndDate    time.Time
	PropertyID *int64
	UserIDs    []int64
}

// UserError пропущенный сотрудник
type UserError struct {
	UserID  int64
	Message string
}

// Response сохраненные зарплаты и пропущенные сотрудники
type Response struct {
	Saved  []*domain.Salary
	Errors []UserError
}
