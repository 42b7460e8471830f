package salary

import "errors"

var (
	// ErrSalaryNotFound возвращается, когда зарплата не найдена
	ErrSalaryNotFound = errors.New("salary.repository: salary not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("salary.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("salary.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("salary.repository: failed to scan row")
)
