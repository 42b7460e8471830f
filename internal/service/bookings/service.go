package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo   BookingRepository
	apartmentRepo ApartmentRepository
	refundRepo    RefundRepository
	userRepo      UserRepository
	txManager     TransactionManager
	policy        policy.Policy
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	apartmentRepo ApartmentRepository,
	refundRepo RefundRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		refundRepo:    refundRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		policy:        policy.New(),
		logger:        logger,
	}
}

// GetByID получает бронирование с квартирами, длительностью и стоимостью.
// Доступ есть у администраторов и у сотрудников объектов этих квартир.
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*domain.BookingDetails, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%d", id, actorID)

	var (
		booking    *domain.Booking
		apartments []*domain.Apartment
	)
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		booking, apartments, err = s.loadAccessible(txCtx, "GetByID", id, actorID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return domain.NewBookingDetails(booking, apartments), nil
}

// ListRefunds возвраты бронирования с остатком к возврату
func (s *Service) ListRefunds(ctx context.Context, bookingID int64, actorID int64) (*models.RefundList, error) {
	s.logger.Info("ListRefunds: fetching refunds of booking id=%d for actor=%d", bookingID, actorID)

	var (
		booking    *domain.Booking
		apartments []*domain.Apartment
		refunds    []*domain.Refund
	)
	// бронирование и возвраты читаются из одного снимка
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		booking, apartments, err = s.loadAccessible(txCtx, "ListRefunds", bookingID, actorID)
		if err != nil {
			return err
		}

		refunds, err = s.refundRepo.GetByBookingID(txCtx, booking.ID)
		if err != nil {
			s.logger.Error("ListRefunds: repository error for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: ListRefunds - repository error: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := domain.TotalPrice(booking.StartDate, booking.EndDate, apartments)
	s.logger.Info("ListRefunds: %d refunds for booking id=%d", len(refunds), booking.ID)
	return models.NewRefundList(booking.ID, refunds, total), nil
}

func (s *Service) loadAccessible(ctx context.Context, op string, bookingID, actorID int64) (*domain.Booking, []*domain.Apartment, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: actor id=%d not found", op, actorID)
			return nil, nil, ErrActorNotFound
		}
		s.logger.Error("%s: failed to get actor id=%d: %v", op, actorID, err)
		return nil, nil, fmt.Errorf("%w: %s - get actor: %w", ErrInternal, op, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return nil, nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}

	apartments, err := s.apartmentRepo.GetByIDs(ctx, booking.ApartmentIDs)
	if err != nil {
		s.logger.Error("%s: failed to get apartments of booking id=%d: %v", op, bookingID, err)
		return nil, nil, fmt.Errorf("%w: %s - get apartments: %w", ErrInternal, op, err)
	}

	if !s.policy.CanAccessBooking(actor, apartments) {
		s.logger.Warn("%s: access denied for actor=%d to booking id=%d", op, actorID, bookingID)
		return nil, nil, ErrAccessDenied
	}

	return booking, apartments, nil
}
