package generate_schedule

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
)

// UseCase use case для генерации и предпросмотра расписания смен
type UseCase struct {
	scheduleRepo ScheduleRepository
	userRepo     UserRepository
	txManager    TransactionManager
	events       EventRecorder
	policy       policy.Policy
	maxWeeks     int
	logger       Logger

	// rand.Rand не потокобезопасен
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewUseCase создает новый экземпляр use case.
// rnd задает источник случайности для перемешивания сотрудников.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	events EventRecorder,
	rnd *rand.Rand,
	maxWeeks int,
	logger Logger,
) *UseCase {
	if events == nil {
		events = metrics.NopRecorder{}
	}
	if maxWeeks <= 0 || maxWeeks > domain.MaxScheduleWeeks {
		maxWeeks = domain.MaxScheduleWeeks
	}
	return &UseCase{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		events:       events,
		policy:       policy.New(),
		maxWeeks:     maxWeeks,
		logger:       logger,
		rnd:          rnd,
	}
}

// Preview строит расписание тем же алгоритмом, ничего не сохраняя
func (uc *UseCase) Preview(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewSchedule: actor=%d, staff=%v, weeks=%d", req.ActorID, req.Config.StaffIDs, req.Config.Weeks)

	resp, err := uc.plan(ctx, "PreviewSchedule", req)
	if err != nil || resp.Suggestion != nil {
		return resp, err
	}

	uc.logger.Info("PreviewSchedule: %d shifts planned", len(resp.Schedules))
	return resp, nil
}

// Execute генерирует расписание и заменяет им смены сотрудников в периоде генерации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSchedule: actor=%d, staff=%v, weeks=%d", req.ActorID, req.Config.StaffIDs, req.Config.Weeks)

	resp, err := uc.plan(ctx, "GenerateSchedule", req)
	if err != nil {
		return nil, err
	}
	if resp.Suggestion != nil {
		uc.events.RecordEvent(metrics.EventScheduleRejected)
		return resp, nil
	}

	from := req.Config.StartDay()
	to := req.Config.EndDate()

	// Удаление и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		deleted, err := uc.scheduleRepo.DeleteByStaffInRange(txCtx, req.Config.StaffIDs, from, to)
		if err != nil {
			uc.logger.Error("GenerateSchedule: failed to delete existing shifts: %v", err)
			return fmt.Errorf("%w: failed to delete shifts: %w", ErrInternal, err)
		}
		resp.Replaced = deleted

		if err := uc.scheduleRepo.CreateBatch(txCtx, resp.Schedules); err != nil {
			uc.logger.Error("GenerateSchedule: failed to insert %d shifts: %v", len(resp.Schedules), err)
			return fmt.Errorf("%w: failed to insert shifts: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.events.RecordEvent(metrics.EventScheduleGenerated)
	uc.logger.Info("GenerateSchedule: %d shifts created, %d replaced, range %s..%s",
		len(resp.Schedules), resp.Replaced, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	return resp, nil
}

// plan общая часть генерации и предпросмотра: права, проверки и распределение
func (uc *UseCase) plan(ctx context.Context, op string, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxWeeks); err != nil {
		uc.logger.Warn("%s: validation failed: %v", op, err)
		return nil, err
	}

	// 2. Права
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("%s: actor id=%d not found", op, req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("%s: failed to get actor id=%d: %v", op, req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %w", ErrInternal, err)
	}

	if !uc.policy.IsAdminOrManager(actor) {
		uc.logger.Warn("%s: actor id=%d with role %s cannot manage schedules", op, actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}

	// 3. Все сотрудники существуют
	staff, err := uc.userRepo.GetByIDs(ctx, req.Config.StaffIDs)
	if err != nil {
		uc.logger.Error("%s: failed to get staff: %v", op, err)
		return nil, fmt.Errorf("%w: failed to get staff: %w", ErrInternal, err)
	}
	if missing := missingStaff(req.Config.StaffIDs, staff); len(missing) > 0 {
		uc.logger.Warn("%s: staff %v not found", op, missing)
		return nil, domain.WithDetail(ErrStaffNotFound, "Staff members not found: %v", missing)
	}

	// 4. Выполнимость
	if suggestion := req.Config.CheckFeasibility(uc.maxWeeks); suggestion != nil {
		uc.logger.Warn("%s: infeasible request: %s", op, suggestion.Reason)
		return &Response{Suggestion: suggestion}, nil
	}

	// 5. Распределение
	slots := uc.distribute(&req.Config)

	schedules := make([]*domain.StaffSchedule, 0, len(slots))
	for _, slot := range slots {
		schedules = append(schedules, slot.ToStaffSchedule(req.Config.DailyHours, actor.ID))
	}

	return &Response{
		Schedules:     schedules,
		HoursPerStaff: domain.HoursDistribution(slots, req.Config.DailyHours),
	}, nil
}

// distribute раздает слоты под мьютексом: rand.Rand нельзя делить между горутинами
func (uc *UseCase) distribute(cfg *domain.ScheduleConfig) []*domain.ScheduleSlot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return buildSlots(cfg, uc.rnd)
}
