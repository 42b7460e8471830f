package occupancy

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
)

// Service проверка пересечений бронирований и пересчет занятости квартир.
// Оба метода рассчитаны на вызов внутри транзакции бронирования после блокировки квартир.
type Service struct {
	bookingRepo   BookingRepository
	apartmentRepo ApartmentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса занятости
func NewService(bookingRepo BookingRepository, apartmentRepo ApartmentRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

// HasOverlap проверяет, пересекается ли [start, end) с блокирующими бронированиями квартиры.
// excludeBookingID = 0 означает, что исключать нечего.
func (s *Service) HasOverlap(ctx context.Context, apartmentID int64, start, end time.Time, excludeBookingID int64) (bool, error) {
	conflict, err := s.findConflict(ctx, apartmentID, start, end, excludeBookingID)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}

// CheckApartments проверяет каждую квартиру. Первая конфликтная квартира
// возвращает ошибку с номером квартиры и пересекающимся периодом.
func (s *Service) CheckApartments(
	ctx context.Context,
	apartments []*domain.Apartment,
	start, end time.Time,
	excludeBookingID int64,
) error {
	for _, apt := range apartments {
		conflict, err := s.findConflict(ctx, apt.ID, start, end, excludeBookingID)
		if err != nil {
			return err
		}
		if conflict != nil {
			s.logger.Warn("CheckApartments: apartment id=%d (number %d) overlaps booking id=%d",
				apt.ID, apt.Number, conflict.ID)
			return domain.WithDetail(domain.ErrBookingOverlap,
				"Apartment %d is already booked from %s to %s",
				apt.Number,
				conflict.StartDate.Format(time.RFC3339),
				conflict.EndDate.Format(time.RFC3339))
		}
	}
	return nil
}

func (s *Service) findConflict(ctx context.Context, apartmentID int64, start, end time.Time, excludeBookingID int64) (*domain.Booking, error) {
	bookings, err := s.bookingRepo.GetBlockingByApartment(ctx, apartmentID, start, end)
	if err != nil {
		s.logger.Error("CheckApartments: failed to get bookings for apartment id=%d: %v", apartmentID, err)
		return nil, fmt.Errorf("%w: get bookings: %w", ErrInternal, err)
	}
	return domain.FindOverlap(bookings, start, end, excludeBookingID), nil
}

// Recompute выставляет inService = есть бронирование checked_in, для каждой квартиры
func (s *Service) Recompute(ctx context.Context, apartmentIDs []int64) error {
	ids := slices.Clone(apartmentIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	for _, id := range ids {
		inService, err := s.bookingRepo.HasCheckedIn(ctx, id)
		if err != nil {
			s.logger.Error("Recompute: failed to check occupancy of apartment id=%d: %v", id, err)
			return fmt.Errorf("%w: check occupancy: %w", ErrInternal, err)
		}

		if err := s.apartmentRepo.SetInService(ctx, id, inService); err != nil {
			s.logger.Error("Recompute: failed to update apartment id=%d: %v", id, err)
			return fmt.Errorf("%w: update apartment: %w", ErrInternal, err)
		}
	}

	s.logger.Info("Recompute: occupancy refreshed for %d apartments", len(ids))
	return nil
}
