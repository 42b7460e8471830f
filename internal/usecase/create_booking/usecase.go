package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
	"github.com/m04kA/SMC-PropertyService/pkg/ptr"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Квартиры блокируются в сериализуемой транзакции до проверки пересечений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: actor=%d, apartments=%v, range=%s",
		req.ActorID, req.ApartmentIDs, domain.FormatRange(req.StartDate, req.EndDate))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	apartmentIDs := uniqueIDs(req.ApartmentIDs)

	// 2. Начальный статус
	now := uc.timeProvider.Now()
	status, err := resolveStatus(req.Status, req.StartDate, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: status validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем пользователя, выполняющего действие
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %w", ErrInternal, err)
	}

	var result *domain.BookingDetails

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем квартиры (FOR UPDATE)
		apartments, err := uc.apartmentRepo.GetByIDs(txCtx, apartmentIDs)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get apartments: %v", err)
			return fmt.Errorf("%w: failed to get apartments: %w", ErrInternal, err)
		}

		// 4.2. Права на квартиры
		if !uc.policy.CanManageApartments(actor, apartments) {
			uc.logger.Warn("CreateBooking: actor id=%d has no access to apartments %v", actor.ID, apartmentIDs)
			return ErrAccessDenied
		}

		// 4.3. Квартиры существуют, активны и свободны
		if err := validateApartments(apartmentIDs, apartments); err != nil {
			uc.logger.Warn("CreateBooking: apartments validation failed: %v", err)
			return err
		}

		// 4.4. Пересечения по каждой квартире
		if err := uc.occupancy.CheckApartments(txCtx, apartments, req.StartDate, req.EndDate, 0); err != nil {
			return err
		}

		// 4.5. Создаем бронирование
		booking := &domain.Booking{
			GuestID:      req.GuestID,
			ApartmentIDs: apartmentIDs,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			Status:       status,
			AddedBy:      ptr.Ptr(actor.ID),
		}
		if status == domain.StatusCheckedIn {
			booking.CheckInBy = ptr.Ptr(actor.ID)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrGuestNotFound) {
				uc.logger.Warn("CreateBooking: guest id=%d not found", *req.GuestID)
				return ErrGuestNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.SetApartments(txCtx, created.ID, apartmentIDs); err != nil {
			uc.logger.Error("CreateBooking: failed to link apartments to booking id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to link apartments: %w", ErrInternal, err)
		}

		// 4.6. Пересчет занятости квартир
		if err := uc.occupancy.Recompute(txCtx, apartmentIDs); err != nil {
			return err
		}

		result = domain.NewBookingDetails(created, apartments)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.events.RecordEvent(metrics.EventBookingCreated)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.Booking.ID, result.Booking.Status)

	return &Response{Booking: result}, nil
}
