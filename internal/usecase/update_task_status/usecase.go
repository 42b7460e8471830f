package update_task_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	taskRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/task"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
)

// UseCase use case для смены статуса задачи
type UseCase struct {
	taskRepo      TaskRepository
	apartmentRepo ApartmentRepository
	userRepo      UserRepository
	txManager     TransactionManager
	events        EventRecorder
	policy        policy.Policy
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	taskRepo TaskRepository,
	apartmentRepo ApartmentRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *UseCase {
	if events == nil {
		events = metrics.NopRecorder{}
	}
	return &UseCase{
		taskRepo:      taskRepo,
		apartmentRepo: apartmentRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		events:        events,
		policy:        policy.New(),
		logger:        logger,
	}
}

// Execute выполняет use case смены статуса задачи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTaskStatus: actor=%d, task=%d, status=%s", req.ActorID, req.TaskID, req.Status)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateTaskStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пользователя
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("UpdateTaskStatus: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("UpdateTaskStatus: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %w", ErrInternal, err)
	}

	resp := &Response{}
	completing := false

	// 3. Статус задачи и флаг уборки меняются в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем задачу
		task, err := uc.taskRepo.GetByID(txCtx, req.TaskID)
		if err != nil {
			if errors.Is(err, taskRepo.ErrTaskNotFound) {
				uc.logger.Warn("UpdateTaskStatus: task id=%d not found", req.TaskID)
				return ErrTaskNotFound
			}
			uc.logger.Error("UpdateTaskStatus: failed to get task id=%d: %v", req.TaskID, err)
			return fmt.Errorf("%w: failed to get task: %w", ErrInternal, err)
		}

		// 3.2. Менять статус могут исполнители и автор
		if !uc.policy.CanUpdateTask(actor, task) {
			uc.logger.Warn("UpdateTaskStatus: actor id=%d is not assigned to task id=%d", actor.ID, task.ID)
			return domain.WithDetail(ErrAccessDenied, "You can only update tasks assigned to you")
		}

		if err := domain.ValidateTaskTransition(task.Status, status, uc.policy.IsAdmin(actor)); err != nil {
			uc.logger.Warn("UpdateTaskStatus: task id=%d %s -> %s rejected: %v", task.ID, task.Status, status, err)
			return err
		}

		completing = status == domain.TaskCompleted && task.Status != domain.TaskCompleted
		task.Status = status

		if err := uc.taskRepo.UpdateStatus(txCtx, task); err != nil {
			if errors.Is(err, taskRepo.ErrTaskNotFound) {
				return ErrTaskNotFound
			}
			uc.logger.Error("UpdateTaskStatus: failed to update task id=%d: %v", task.ID, err)
			return fmt.Errorf("%w: failed to update task: %w", ErrInternal, err)
		}
		resp.Task = task

		// 3.3. Завершенная задача отмечает квартиры убранными
		if completing && len(task.ApartmentIDs) > 0 {
			if err := uc.apartmentRepo.MarkCleaned(txCtx, task.ApartmentIDs); err != nil {
				uc.logger.Error("UpdateTaskStatus: failed to mark apartments %v cleaned: %v", task.ApartmentIDs, err)
				return fmt.Errorf("%w: failed to mark apartments cleaned: %w", ErrInternal, err)
			}
			resp.CleanedApartmentIDs = task.ApartmentIDs
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if completing {
		uc.events.RecordEvent(metrics.EventTaskCompleted)
	}
	uc.logger.Info("UpdateTaskStatus: task id=%d is %s", resp.Task.ID, resp.Task.Status)

	return resp, nil
}
