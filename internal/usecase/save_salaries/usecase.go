package save_salaries

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	userRepo "github.com/m04kA/SMC-PropertyService/internal/infra/storage/user"
	"github.com/m04kA/SMC-PropertyService/internal/policy"
	payrollModels "github.com/m04kA/SMC-PropertyService/internal/service/payroll/models"
	"github.com/m04kA/SMC-PropertyService/pkg/metrics"
)

// UseCase use case для сохранения зарплат за период
type UseCase struct {
	calculator PayrollCalculator
	salaryRepo SalaryRepository
	userRepo   UserRepository
	txManager  TransactionManager
	events     EventRecorder
	policy     policy.Policy
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calculator PayrollCalculator,
	salaryRepo SalaryRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *UseCase {
	if events == nil {
		events = metrics.NopRecorder{}
	}
	return &UseCase{
		calculator: calculator,
		salaryRepo: salaryRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		events:     events,
		policy:     policy.New(),
		logger:     logger,
	}
}

// Execute пересчитывает и сохраняет зарплаты одной сериализуемой транзакцией.
// Ненайденные сотрудники и сотрудники с пересекающимся периодом пропускаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveSalaries: actor=%d, users=%v, period=%s..%s",
		req.ActorID, req.UserIDs, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveSalaries: validation failed: %v", err)
		return nil, err
	}

	// 2. Права
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("SaveSalaries: actor id=%d not found", req.ActorID)
			return nil, ErrActorNotFound
		}
		uc.logger.Error("SaveSalaries: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %w", ErrInternal, err)
	}

	if !uc.policy.IsAdmin(actor) {
		uc.logger.Warn("SaveSalaries: actor id=%d with role %s cannot save salaries", actor.ID, actor.Role)
		return nil, ErrAccessDenied
	}

	period := payrollModels.Period{StartDate: req.StartDate, EndDate: req.EndDate, PropertyID: req.PropertyID}
	var resp *Response

	// 3. Расчет и сохранение в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		resp = &Response{Saved: []*domain.Salary{}, Errors: []UserError{}}

		result, err := uc.calculator.Calculate(txCtx, period, req.UserIDs)
		if err != nil {
			return err
		}

		lines := make(map[int64]*payrollModels.Line, len(result.Lines))
		for _, line := range result.Lines {
			lines[line.User.ID] = line
		}

		for _, userID := range uniqueIDs(req.UserIDs) {
			line, ok := lines[userID]
			if !ok {
				resp.Errors = append(resp.Errors, UserError{UserID: userID, Message: "User not found"})
				continue
			}

			if line.OverlapsExisting {
				resp.Errors = append(resp.Errors, UserError{
					UserID:  userID,
					Message: fmt.Sprintf("Salary period overlaps with an existing record for %s", line.User.FullName()),
				})
				continue
			}

			salary, err := uc.salaryRepo.Create(txCtx, &domain.Salary{
				UserID:      userID,
				PropertyID:  req.PropertyID,
				TotalSalary: line.Breakdown.Total,
				StartDate:   req.StartDate,
				EndDate:     req.EndDate,
				Status:      domain.SalaryPending,
			})
			if err != nil {
				uc.logger.Error("SaveSalaries: failed to save salary of user id=%d: %v", userID, err)
				return fmt.Errorf("%w: failed to save salary: %w", ErrInternal, err)
			}
			resp.Saved = append(resp.Saved, salary)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.events.RecordEvent(metrics.EventSalariesSaved)
	uc.logger.Info("SaveSalaries: %d saved, %d skipped", len(resp.Saved), len(resp.Errors))

	return resp, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
