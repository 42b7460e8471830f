package payroll

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/property"
	"github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
)

// Service расчет зарплат по завершенным задачам
type Service struct {
	taskRepo     TaskRepository
	payRuleRepo  PayRuleRepository
	salaryRepo   SalaryRepository
	userRepo     UserRepository
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расчета
func NewService(
	taskRepo TaskRepository,
	payRuleRepo PayRuleRepository,
	salaryRepo SalaryRepository,
	userRepo UserRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *Service {
	return &Service{
		taskRepo:     taskRepo,
		payRuleRepo:  payRuleRepo,
		salaryRepo:   salaryRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Calculate считает зарплаты за период.
// Если userIDs nil, берутся сотрудники с завершенными задачами за период,
// иначе считаются ровно указанные (без задач получают только оклад).
// Ненайденные пользователи в результат не попадают.
func (s *Service) Calculate(ctx context.Context, period models.Period, userIDs []int64) (*models.Result, error) {
	result := &models.Result{Period: period}

	// 1. Объект фильтра
	if period.PropertyID != nil {
		property, err := s.propertyRepo.GetByID(ctx, *period.PropertyID)
		if err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				s.logger.Warn("Calculate: property id=%d not found", *period.PropertyID)
				return nil, ErrPropertyNotFound
			}
			s.logger.Error("Calculate: failed to get property id=%d: %v", *period.PropertyID, err)
			return nil, fmt.Errorf("%w: get property: %w", ErrInternal, err)
		}
		result.Property = property
	}

	// 2. Отработанные минуты
	minutes, err := s.taskRepo.GetCompletedMinutesByUser(ctx, period.StartDate, period.EndDate, period.PropertyID)
	if err != nil {
		s.logger.Error("Calculate: failed to aggregate completed tasks: %v", err)
		return nil, fmt.Errorf("%w: aggregate tasks: %w", ErrInternal, err)
	}

	if userIDs == nil {
		for id := range minutes {
			userIDs = append(userIDs, id)
		}
	}
	userIDs = slices.Clone(userIDs)
	slices.Sort(userIDs)
	userIDs = slices.Compact(userIDs)

	if len(userIDs) == 0 {
		result.Lines = []*models.Line{}
		return result, nil
	}

	// 3. Пользователи, ставки и существующие зарплаты
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		s.logger.Error("Calculate: failed to get users: %v", err)
		return nil, fmt.Errorf("%w: get users: %w", ErrInternal, err)
	}

	rules, err := s.payRuleRepo.GetByUserIDs(ctx, userIDs)
	if err != nil {
		s.logger.Error("Calculate: failed to get pay rules: %v", err)
		return nil, fmt.Errorf("%w: get pay rules: %w", ErrInternal, err)
	}

	overlaps, err := s.salaryRepo.GetOverlappingUserIDs(ctx, userIDs, period.StartDate, period.EndDate)
	if err != nil {
		s.logger.Error("Calculate: failed to check existing salaries: %v", err)
		return nil, fmt.Errorf("%w: check salaries: %w", ErrInternal, err)
	}

	// 4. Расчет
	result.Lines = make([]*models.Line, 0, len(users))
	for _, user := range users {
		worked, ok := minutes[user.ID]
		if !ok {
			worked = decimal.Zero
		}

		breakdown := domain.ComputeSalary(rules[user.ID], worked)
		if breakdown.DuplicateRules {
			s.logger.Warn("Calculate: user id=%d has several pay rules of one type, the latest is used", user.ID)
		}

		result.Lines = append(result.Lines, &models.Line{
			User:             user,
			Breakdown:        breakdown,
			OverlapsExisting: overlaps[user.ID],
		})
	}

	s.logger.Info("Calculate: %d salaries computed for %s..%s",
		len(result.Lines), period.StartDate.Format(domain.DateFormat), period.EndDate.Format(domain.DateFormat))
	return result, nil
}
