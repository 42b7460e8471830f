package update_booking

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	apartmentRepo ApartmentRepository
	userRepo      UserRepository
	occupancy     OccupancyService
	txManager     TransactionManager
	timeProvider  TimeProvider
	events        EventRecorder
	policy        policy.Policy
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	apartmentRepo ApartmentRepository,
	userRepo UserRepository,
	occupancy OccupancyService,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *UseCase {
	if events == nil {
		events = metrics.NopRecorder{}
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		userRepo:      userRepo,
		occupancy:     occupancy,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		events:        events,
		policy:        policy.New(),
		logger:        logger,
	}
}

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: actor=%d, booking=%d", req.ActorID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пользователя, выполняющего действие
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("UpdateBooking: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %w", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	var result *domain.BookingDetails

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем бронирование
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3.2. Переход статуса и изменения
		updated, err := applyChanges(current, req, actor.ID, now)
		if err != nil {
			uc.logger.Warn("UpdateBooking: booking id=%d rejected: %v", current.ID, err)
			return err
		}

		// 3.3. Блокируем старые и новые квартиры одним запросом
		touched := uniqueSorted(append(slices.Clone(current.ApartmentIDs), updated.ApartmentIDs...))
		apartments, err := uc.apartmentRepo.GetByIDs(txCtx, touched)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get apartments: %v", err)
			return fmt.Errorf("%w: failed to get apartments: %w", ErrInternal, err)
		}
		byID := make(map[int64]*domain.Apartment, len(apartments))
		for _, apt := range apartments {
			byID[apt.ID] = apt
		}

		// 3.4. Права на текущие и добавляемые квартиры
		if !uc.policy.CanManageApartments(actor, apartments) {
			uc.logger.Warn("UpdateBooking: actor id=%d has no access to booking id=%d", actor.ID, current.ID)
			return ErrAccessDenied
		}

		added := difference(updated.ApartmentIDs, current.ApartmentIDs)
		if err := validateAddedApartments(added, byID); err != nil {
			uc.logger.Warn("UpdateBooking: apartments validation failed: %v", err)
			return err
		}

		// 3.5. Пересечения, если бронирование продолжает занимать квартиры
		nextApartments := pick(updated.ApartmentIDs, byID)
		if updated.BlocksApartments() {
			if err := uc.occupancy.CheckApartments(txCtx, nextApartments, updated.StartDate, updated.EndDate, current.ID); err != nil {
				return err
			}
		}

		// 3.6. Сохраняем изменения
		if err := uc.bookingRepo.Update(txCtx, updated); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		if !slices.Equal(updated.ApartmentIDs, current.ApartmentIDs) {
			if err := uc.bookingRepo.SetApartments(txCtx, current.ID, updated.ApartmentIDs); err != nil {
				uc.logger.Error("UpdateBooking: failed to relink apartments of booking id=%d: %v", current.ID, err)
				return fmt.Errorf("%w: failed to link apartments: %w", ErrInternal, err)
			}
		}

		// 3.7. Пересчет занятости старых и новых квартир
		if err := uc.occupancy.Recompute(txCtx, touched); err != nil {
			return err
		}

		result = domain.NewBookingDetails(updated, nextApartments)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.events.RecordEvent(metrics.EventBookingUpdated)
	uc.logger.Info("UpdateBooking: booking id=%d updated, status=%s", result.Booking.ID, result.Booking.Status)

	return &Response{Booking: result}, nil
}
