package create_refund

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
)

// UseCase use case для создания возврата по бронированию
type UseCase struct {
	bookingRepo   BookingRepository
	apartmentRepo ApartmentRepository
	refundRepo    RefundRepository
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
	refundRepo RefundRepository,
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
		refundRepo:    refundRepo,
		userRepo:      userRepo,
		occupancy:     occupancy,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		events:        events,
		policy:        policy.New(),
		logger:        logger,
	}
}

// Execute выполняет use case создания возврата.
// Бронирование блокируется на всю транзакцию, поэтому проверка баланса и вставка атомарны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRefund: actor=%d, booking=%d, amount=%s", req.ActorID, req.BookingID, req.Amount.String())

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateRefund: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пользователя и проверяем право одобрения
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateRefund: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("CreateRefund: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %w", ErrInternal, err)
	}

	if !uc.policy.IsReceptionist(actor) {
		uc.logger.Warn("CreateRefund: actor id=%d with role %s cannot create refunds", actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}

	if status == domain.RefundApproved && !uc.policy.CanApproveRefund(actor) {
		uc.logger.Warn("CreateRefund: actor id=%d cannot approve refunds", actor.ID)
		return nil, domain.WithDetail(ErrApprovalDenied, "Receptionists can only create pending refunds")
	}

	amount := req.Amount.Round(domain.MoneyScale)
	now := uc.timeProvider.Now()
	resp := &Response{}

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CreateRefund: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CreateRefund: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !booking.IsRefundable() {
			uc.logger.Warn("CreateRefund: booking id=%d has status %s", booking.ID, booking.Status)
			return domain.WithDetail(ErrBookingNotRefundable, "Refunds are not allowed for bookings with status '%s'", booking.Status)
		}

		// 3.2. Квартиры для проверки доступа и расчета стоимости
		apartments, err := uc.apartmentRepo.GetByIDs(txCtx, booking.ApartmentIDs)
		if err != nil {
			uc.logger.Error("CreateRefund: failed to get apartments of booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to get apartments: %w", ErrInternal, err)
		}

		if !uc.policy.CanAccessBooking(actor, apartments) {
			uc.logger.Warn("CreateRefund: actor id=%d has no access to booking id=%d", actor.ID, booking.ID)
			return ErrAccessDenied
		}

		total := domain.TotalPrice(booking.StartDate, booking.EndDate, apartments)
		if total == nil {
			uc.logger.Warn("CreateRefund: total price of booking id=%d is unavailable", booking.ID)
			return domain.WithDetail(ErrPriceUnavailable, "Booking total price cannot be calculated")
		}

		// 3.3. Проверка баланса
		existing, err := uc.refundRepo.GetByBookingID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("CreateRefund: failed to get refunds of booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to get refunds: %w", ErrInternal, err)
		}

		if err := domain.ValidateRefundAmount(*total, domain.RefundedAmount(existing), amount); err != nil {
			uc.logger.Warn("CreateRefund: booking id=%d balance check failed: %v", booking.ID, err)
			return err
		}

		// 3.4. Создаем возврат
		refund := &domain.Refund{
			GuestID:   booking.GuestID,
			BookingID: booking.ID,
			Amount:    amount,
			Reason:    req.Reason,
			Status:    domain.RefundPending,
			UpdatedBy: &actor.ID,
		}
		if status == domain.RefundApproved {
			refund.Approve(actor.ID, now)
		}

		created, err := uc.refundRepo.Create(txCtx, refund)
		if err != nil {
			uc.logger.Error("CreateRefund: failed to create refund for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to create refund: %w", ErrInternal, err)
		}
		resp.Refund = created

		// 3.5. Полный одобренный возврат отменяет бронирование
		if created.Status != domain.RefundApproved ||
			booking.Status == domain.StatusCancelled ||
			!domain.IsFullRefund(*total, created.Amount) {
			return nil
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CreateRefund: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %w", ErrInternal, err)
		}
		if err := uc.occupancy.Recompute(txCtx, booking.ApartmentIDs); err != nil {
			return err
		}
		resp.BookingCancelled = true

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.events.RecordEvent(metrics.EventRefundCreated)
	uc.logger.Info("CreateRefund: refund id=%d created for booking id=%d, status=%s, bookingCancelled=%t",
		resp.Refund.ID, req.BookingID, resp.Refund.Status, resp.BookingCancelled)

	return resp, nil
}
