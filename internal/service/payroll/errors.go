package payroll

import (
	"errors"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

var (
	// ErrPropertyNotFound возвращается, когда объект фильтра не найден
	ErrPropertyNotFound = domain.NewError(domain.ErrNotFound, "payroll: property not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payroll: internal error")
)
