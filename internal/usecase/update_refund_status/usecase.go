package update_refund_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	refundRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/refund"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
)

// UseCase use case для обработки (одобрения или отклонения) возврата
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

// Execute выполняет use case обработки возврата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateRefundStatus: actor=%d, refund=%d, status=%s", req.ActorID, req.RefundID, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateRefundStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пользователя. Ресепшн не обрабатывает возвраты.
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("UpdateRefundStatus: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("UpdateRefundStatus: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %w", ErrInternal, err)
	}

	if !uc.policy.CanApproveRefund(actor) {
		uc.logger.Warn("UpdateRefundStatus: actor id=%d with role %s cannot process refunds", actor.ID, actor.Role)
		return nil, domain.WithDetail(ErrAccessDenied, "Only managers and admins can process refunds")
	}

	now := uc.timeProvider.Now()
	resp := &Response{}

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем возврат
		refund, err := uc.refundRepo.GetByID(txCtx, req.RefundID)
		if err != nil {
			if errors.Is(err, refundRepo.ErrRefundNotFound) {
				uc.logger.Warn("UpdateRefundStatus: refund id=%d not found", req.RefundID)
				return ErrRefundNotFound
			}
			uc.logger.Error("UpdateRefundStatus: failed to get refund id=%d: %v", req.RefundID, err)
			return fmt.Errorf("%w: failed to get refund: %w", ErrInternal, err)
		}

		if refund.Status != domain.RefundPending {
			uc.logger.Warn("UpdateRefundStatus: refund id=%d already %s", refund.ID, refund.Status)
			return domain.WithDetail(ErrAlreadyProcessed, "Only pending refunds can be updated")
		}

		// 3.2. Блокируем бронирование и проверяем доступ
		booking, err := uc.bookingRepo.GetByID(txCtx, refund.BookingID)
		if err != nil {
			uc.logger.Error("UpdateRefundStatus: failed to get booking id=%d: %v", refund.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		apartments, err := uc.apartmentRepo.GetByIDs(txCtx, booking.ApartmentIDs)
		if err != nil {
			uc.logger.Error("UpdateRefundStatus: failed to get apartments of booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to get apartments: %w", ErrInternal, err)
		}

		if !uc.policy.CanAccessBooking(actor, apartments) {
			uc.logger.Warn("UpdateRefundStatus: actor id=%d has no access to booking id=%d", actor.ID, booking.ID)
			return ErrAccessDenied
		}

		// 3.3. Сохраняем решение
		if req.Status == domain.RefundApproved {
			refund.Approve(actor.ID, now)
		} else {
			refund.Reject(actor.ID, now)
		}

		if err := uc.refundRepo.UpdateStatus(txCtx, refund); err != nil {
			uc.logger.Error("UpdateRefundStatus: failed to update refund id=%d: %v", refund.ID, err)
			return fmt.Errorf("%w: failed to update refund: %w", ErrInternal, err)
		}
		resp.Refund = refund

		// 3.4. Одобрение полной суммы отменяет бронирование
		if refund.Status != domain.RefundApproved || booking.Status == domain.StatusCancelled {
			return nil
		}

		total := domain.TotalPrice(booking.StartDate, booking.EndDate, apartments)
		if total == nil || !domain.IsFullRefund(*total, refund.Amount) {
			return nil
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("UpdateRefundStatus: failed to cancel booking id=%d: %v", booking.ID, err)
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

	uc.events.RecordEvent(metrics.EventRefundProcessed)
	uc.logger.Info("UpdateRefundStatus: refund id=%d is %s, bookingCancelled=%t",
		resp.Refund.ID, resp.Refund.Status, resp.BookingCancelled)

	return resp, nil
}
