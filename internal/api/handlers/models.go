package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// ApartmentResponse квартира в составе бронирования
type ApartmentResponse struct {
	ID         int64            `json:"id"`
	PropertyID int64            `json:"propertyId"`
	Number     int              `json:"number"`
	Name       *string          `json:"name,omitempty"`
	Price      *decimal.Decimal `json:"price"`
	Currency   string           `json:"currency"`
	InService  bool             `json:"inService"`
	Cleaned    bool             `json:"cleaned"`
}

// BookingResponse бронирование с квартирами и расчетом стоимости
type BookingResponse struct {
	ID                int64               `json:"id"`
	GuestID           *int64              `json:"guestId"`
	Apartments        []ApartmentResponse `json:"apartments"`
	StartDate         string              `json:"startDate"`
	EndDate           string              `json:"endDate"`
	DateOfReservation string              `json:"dateOfReservation"`
	Status            string              `json:"status"`
	DurationDays      *int                `json:"durationDays"`
	TotalPrice        *string             `json:"totalPrice"`
	AddedBy           *int64              `json:"addedBy"`
	CheckInBy         *int64              `json:"checkInBy"`
	CheckOutBy        *int64              `json:"checkOutBy"`
	CreatedAt         string              `json:"createdAt"`
	UpdatedAt         string              `json:"updatedAt"`
}

// RefundResponse возврат по бронированию
type RefundResponse struct {
	ID          int64   `json:"id"`
	BookingID   int64   `json:"bookingId"`
	GuestID     *int64  `json:"guestId"`
	Amount      string  `json:"amount"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	ProcessedBy *int64  `json:"processedBy"`
	ProcessedAt *string `json:"processedAt"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ScheduleResponse смена сотрудника
type ScheduleResponse struct {
	ID         int64   `json:"id,omitempty"`
	StaffID    int64   `json:"staffId"`
	Day        string  `json:"day"`
	Date       string  `json:"date"`
	WeekNumber int     `json:"weekNumber"`
	Hours      float64 `json:"hours"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	AddedBy    *int64  `json:"addedBy"`
}

// SalaryResponse сохраненная зарплата
type SalaryResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	PropertyID  *int64  `json:"propertyId"`
	TotalSalary string  `json:"totalSalary"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Status      string  `json:"status"`
	PaidAt      *string `json:"paidAt"`
}

// NewBookingResponse конвертирует доменное бронирование в HTTP ответ
func NewBookingResponse(details *domain.BookingDetails) *BookingResponse {
	b := details.Booking
	resp := &BookingResponse{
		ID:                b.ID,
		GuestID:           b.GuestID,
		Apartments:        make([]ApartmentResponse, 0, len(details.Apartments)),
		StartDate:         b.StartDate.Format(time.RFC3339),
		EndDate:           b.EndDate.Format(time.RFC3339),
		DateOfReservation: b.DateOfReservation.Format(time.RFC3339),
		Status:            string(b.Status),
		DurationDays:      details.DurationDays,
		AddedBy:           b.AddedBy,
		CheckInBy:         b.CheckInBy,
		CheckOutBy:        b.CheckOutBy,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
	if details.TotalPrice != nil {
		total := details.TotalPrice.StringFixed(domain.MoneyScale)
		resp.TotalPrice = &total
	}
	for _, apt := range details.Apartments {
		resp.Apartments = append(resp.Apartments, ApartmentResponse{
			ID:         apt.ID,
			PropertyID: apt.PropertyID,
			Number:     apt.Number,
			Name:       apt.Name,
			Price:      apt.Price,
			Currency:   apt.Currency,
			InService:  apt.InService,
			Cleaned:    apt.Cleaned,
		})
	}
	return resp
}

// NewRefundResponse конвертирует доменный возврат в HTTP ответ
func NewRefundResponse(r *domain.Refund) *RefundResponse {
	return &RefundResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		GuestID:     r.GuestID,
		Amount:      r.Amount.StringFixed(domain.MoneyScale),
		Reason:      r.Reason,
		Status:      string(r.Status),
		ProcessedBy: r.ProcessedBy,
		ProcessedAt: formatOptional(r.ProcessedAt),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

// NewScheduleResponse конвертирует смену в HTTP ответ
func NewScheduleResponse(s *domain.StaffSchedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:         s.ID,
		StaffID:    s.StaffID,
		Day:        s.Day,
		Date:       s.Date.Format(domain.DateFormat),
		WeekNumber: s.WeekNumber,
		Hours:      s.Hours,
		AddedBy:    s.AddedBy,
	}
	if s.StartTime != nil {
		start := s.StartTime.String()
		resp.StartTime = &start
	}
	if s.EndTime != nil {
		end := s.EndTime.String()
		resp.EndTime = &end
	}
	return resp
}

// NewScheduleResponses конвертирует список смен
func NewScheduleResponses(schedules []*domain.StaffSchedule) []ScheduleResponse {
	resp := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, NewScheduleResponse(s))
	}
	return resp
}

// NewSalaryResponse конвертирует зарплату в HTTP ответ
func NewSalaryResponse(s *domain.Salary) SalaryResponse {
	return SalaryResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		PropertyID:  s.PropertyID,
		TotalSalary: s.TotalSalary.StringFixed(domain.MoneyScale),
		StartDate:   s.StartDate.Format(domain.DateFormat),
		EndDate:     s.EndDate.Format(domain.DateFormat),
		Status:      string(s.Status),
		PaidAt:      formatOptional(s.PaidAt),
	}
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

// ParseDateTime принимает RFC3339 или дату YYYY-MM-DD
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, s)
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
