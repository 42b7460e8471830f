package salaries

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	salaryRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/salary"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	"github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
)

// Service сервис зарплат. Все операции доступны только администраторам.
type Service struct {
	salaryRepo   SalaryRepository
	userRepo     UserRepository
	payroll      PayrollCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	policy       policy.Policy
	logger       Logger
}

// NewService создает новый экземпляр сервиса зарплат
func NewService(
	salaryRepo SalaryRepository,
	userRepo UserRepository,
	payroll PayrollCalculator,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		salaryRepo:   salaryRepo,
		userRepo:     userRepo,
		payroll:      payroll,
		txManager:    txManager,
		timeProvider: realTimeProvider{},
		policy:       policy.New(),
		logger:       logger,
	}
}

// Preview рассчитывает зарплаты за период без сохранения
func (s *Service) Preview(ctx context.Context, actorID int64, period models.Period) (*models.Result, error) {
	s.logger.Info("Preview: actor=%d, period=%s..%s", actorID,
		period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02"))

	if err := s.requireAdmin(ctx, "Preview", actorID); err != nil {
		return nil, err
	}

	if err := domain.ValidatePeriod(period.StartDate, period.EndDate); err != nil {
		s.logger.Warn("Preview: invalid period: %v", err)
		return nil, err
	}

	// задачи, ставки и сохраненные зарплаты читаются из одного снимка
	var result *models.Result
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.payroll.Calculate(txCtx, period, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Preview: %d salary lines", len(result.Lines))
	return result, nil
}

// ListPeriods возвращает сохраненные расчетные периоды
func (s *Service) ListPeriods(ctx context.Context, actorID int64) ([]*domain.SalaryPeriod, error) {
	if err := s.requireAdmin(ctx, "ListPeriods", actorID); err != nil {
		return nil, err
	}

	periods, err := s.salaryRepo.ListPeriods(ctx)
	if err != nil {
		s.logger.Error("ListPeriods: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPeriods - repository error: %w", ErrInternal, err)
	}

	return periods, nil
}

// UpdateStatus переводит зарплату между pending и paid
func (s *Service) UpdateStatus(ctx context.Context, actorID, salaryID int64, rawStatus string) (*domain.Salary, error) {
	s.logger.Info("UpdateStatus: actor=%d, salary=%d, status=%s", actorID, salaryID, rawStatus)

	status, err := domain.ParseSalaryStatus(rawStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: %v", err)
		return nil, err
	}

	if err := s.requireAdmin(ctx, "UpdateStatus", actorID); err != nil {
		return nil, err
	}

	salary, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		if errors.Is(err, salaryRepo.ErrSalaryNotFound) {
			s.logger.Warn("UpdateStatus: salary id=%d not found", salaryID)
			return nil, ErrSalaryNotFound
		}
		s.logger.Error("UpdateStatus: failed to get salary id=%d: %v", salaryID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - get salary: %w", ErrInternal, err)
	}

	salary.SetStatus(status, s.timeProvider.Now())

	if err := s.salaryRepo.UpdateStatus(ctx, salary); err != nil {
		if errors.Is(err, salaryRepo.ErrSalaryNotFound) {
			return nil, ErrSalaryNotFound
		}
		s.logger.Error("UpdateStatus: failed to update salary id=%d: %v", salaryID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - update salary: %w", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: salary id=%d is %s", salary.ID, salary.Status)
	return salary, nil
}

func (s *Service) requireAdmin(ctx context.Context, op string, actorID int64) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: actor id=%d not found", op, actorID)
			return ErrActorNotFound
		}
		s.logger.Error("%s: failed to get actor id=%d: %v", op, actorID, err)
		return fmt.Errorf("%w: %s - get actor: %w", ErrInternal, op, err)
	}

	if !s.policy.IsAdmin(actor) {
		s.logger.Warn("%s: actor id=%d with role %s is not an admin", op, actorID, actor.Role)
		return domain.WithDetail(ErrAccessDenied, "Only admins can manage salaries")
	}

	return nil
}
