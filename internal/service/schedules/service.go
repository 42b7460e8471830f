package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
)

// Service сервис просмотра и удаления смен
type Service struct {
	scheduleRepo ScheduleRepository
	userRepo     UserRepository
	policy       policy.Policy
	logger       Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(scheduleRepo ScheduleRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		policy:       policy.New(),
		logger:       logger,
	}
}

// List возвращает смены. Админы и менеджеры видят всех,
// остальные только свои смены, фильтр по сотруднику для них подменяется.
func (s *Service) List(ctx context.Context, actorID int64, filter domain.ScheduleFilter) ([]*domain.StaffSchedule, error) {
	s.logger.Info("List: actor=%d, staff=%v, week=%v", actorID, filter.StaffID, filter.WeekNumber)

	actor, err := s.getActor(ctx, "List", actorID)
	if err != nil {
		return nil, err
	}

	if !s.policy.IsAdminOrManager(actor) {
		if filter.StaffID != nil && !s.policy.CanViewSchedulesOf(actor, *filter.StaffID) {
			s.logger.Warn("List: actor=%d cannot view schedules of staff=%d", actorID, *filter.StaffID)
			return nil, ErrAccessDenied
		}
		filter.StaffID = &actor.ID
	}

	schedules, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: found %d shifts", len(schedules))
	return schedules, nil
}

// Delete удаляет смену. Разрешено админам, менеджерам, самому сотруднику и автору смены.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("Delete: schedule id=%d, actor=%d", id, actorID)

	actor, err := s.getActor(ctx, "Delete", actorID)
	if err != nil {
		return err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%d not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	if !s.policy.CanDeleteSchedule(actor, schedule) {
		s.logger.Warn("Delete: access denied for actor=%d to schedule id=%d", actorID, id)
		return ErrAccessDenied
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: failed to delete schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: schedule id=%d deleted", id)
	return nil
}

func (s *Service) getActor(ctx context.Context, op string, actorID int64) (*domain.User, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: actor id=%d not found", op, actorID)
			return nil, ErrActorNotFound
		}
		s.logger.Error("%s: failed to get actor id=%d: %v", op, actorID, err)
		return nil, fmt.Errorf("%w: %s - get actor: %w", ErrInternal, op, err)
	}
	return actor, nil
}
