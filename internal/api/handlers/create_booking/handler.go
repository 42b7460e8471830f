package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PropertyService/internal/api/handlers"
	"github.com/m04kA/SMC-PropertyService/internal/api/middleware"
	"github.com/m04kA/SMC-PropertyService/internal/domain"
	createBooking "github.com/m04kA/SMC-PropertyService/internal/usecase/create_booking"
)

const (
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDates        = "некорректный формат дат, ожидается RFC3339 или YYYY-MM-DD"
	msgInvalidStatus       = "недопустимый статус бронирования"
	msgInvalidBooking      = "некорректные параметры бронирования"
	msgApartmentNotFound   = "квартира не найдена"
	msgApartmentNotBooking = "квартира недоступна для бронирования"
	msgApartmentOverlap    = "квартира уже забронирована на выбранные даты"
	msgGuestNotFound       = "гость не найден"
	msgForbidden           = "доступ запрещен"
	msgConflict            = "конфликт одновременных изменений, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
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
		case errors.Is(err, domain.ErrBookingOverlap):
			h.logger.Warn("POST /bookings - Apartment overlap: actor_id=%d, apartments=%v", actorID, req.ApartmentIDs)
			handlers.RespondDomainError(w, err, msgApartmentOverlap)

		case errors.Is(err, createBooking.ErrApartmentNotFound):
			h.logger.Warn("POST /bookings - Apartment not found: apartments=%v", req.ApartmentIDs)
			handlers.RespondDomainError(w, err, msgApartmentNotFound)

		case errors.Is(err, createBooking.ErrApartmentUnavailable):
			h.logger.Warn("POST /bookings - Apartment unavailable: apartments=%v", req.ApartmentIDs)
			handlers.RespondDomainError(w, err, msgApartmentNotBooking)

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%v", req.GuestID)
			handlers.RespondDomainError(w, err, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrInvalidStatus):
			h.logger.Warn("POST /bookings - Invalid status: %v", err)
			handlers.RespondDomainError(w, err, msgInvalidStatus)

		case errors.Is(err, domain.ErrPermission):
			h.logger.Warn("POST /bookings - Access denied: actor_id=%d", actorID)
			handlers.RespondDomainError(w, err, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondDomainError(w, err, msgInvalidBooking)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /bookings - Serialization conflict: actor_id=%d", actorID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: actor_id=%d, error=%v", actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, actor_id=%d",
		result.Booking.Booking.ID, actorID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewBookingResponse(result.Booking))
}
