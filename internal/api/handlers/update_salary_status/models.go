package update_salary_status

// UpdateSalaryStatusRequest HTTP request model
type UpdateSalaryStatusRequest struct {
	Status string `json:"status"`
}
