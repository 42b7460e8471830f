package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	updateBooking "github.com/m04kA/SMC-PropertyService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается RFC3339 или YYYY-MM-DD"
	msgInvalidStatus      = "недопустимый статус бронирования"
	msgInvalidTransition  = "недопустимая смена статуса бронирования"
	msgInvalidBooking     = "некорректные параметры бронирования"
	msgNotFound           = "бронирование не найдено"
	msgApartmentNotFound  = "квартира не найдена"
	msgApartmentsLocked   = "нельзя менять квартиры заселенного бронирования"
	msgApartmentOverlap   = "квартира уже забронирована на выбранные даты"
	msgForbidden          = "доступ запрещен"
	msgConflict           = "конфликт одновременных изменений, повторите запрос"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID, bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		if errors.Is(err, domain.ErrInvalidBookingStatus) {
			handlers.RespondDomainError(w, err, msgInvalidStatus)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDates)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrApartmentNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Apartment not found: booking_id=%d, apartments=%v", bookingID, req.ApartmentIDs)
			handlers.RespondDomainError(w, err, msgApartmentNotFound)

		case errors.Is(err, updateBooking.ErrApartmentsLocked):
			h.logger.Warn("PATCH /bookings/{id} - Apartments locked: booking_id=%d", bookingID)
			handlers.RespondDomainError(w, err, msgApartmentsLocked)

		case errors.Is(err, domain.ErrBookingOverlap):
			h.logger.Warn("PATCH /bookings/{id} - Apartment overlap: booking_id=%d", bookingID)
			handlers.RespondDomainError(w, err, msgApartmentOverlap)

		case errors.Is(err, domain.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id} - Invalid transition: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDomainError(w, err, msgInvalidTransition)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, actor_id=%d", bookingID, actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PATCH /bookings/{id} - Validation failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDomainError(w, err, msgInvalidBooking)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("PATCH /bookings/{id} - Serialization conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, status=%s",
		bookingID, result.Booking.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingResponse(result.Booking))
}
