package salary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/psqlbuilder"
)

// Repository репозиторий сохраненных зарплат
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория зарплат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет расчет зарплаты
func (r *Repository) Create(ctx context.Context, salary *domain.Salary) (*domain.Salary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salaries").
		Columns("user_id", "property_id", "total_salary", "start_date", "end_date", "status", "paid_at").
		Values(salary.UserID, salary.PropertyID, salary.TotalSalary, salary.StartDate, salary.EndDate, salary.Status, salary.PaidAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&salary.ID, &salary.CreatedAt, &salary.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return salary, nil
}

// GetByID получает зарплату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"property_id",
		"total_salary",
		"start_date",
		"end_date",
		"status",
		"paid_at",
		"created_at",
		"updated_at",
	).
		From("salaries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var (
		s          domain.Salary
		propertyID sql.NullInt64
		paidAt     sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&propertyID,
		&s.TotalSalary,
		&s.StartDate,
		&s.EndDate,
		&s.Status,
		&paidAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalaryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salary: %w", ErrScanRow, err)
	}

	if propertyID.Valid {
		s.PropertyID = &propertyID.Int64
	}
	if paidAt.Valid {
		s.PaidAt = &paidAt.Time
	}

	return &s, nil
}

// UpdateStatus сохраняет статус и время оплаты
func (r *Repository) UpdateStatus(ctx context.Context, salary *domain.Salary) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salaries").
		Set("status", salary.Status).
		Set("paid_at", salary.PaidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": salary.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&salary.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSalaryNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// GetOverlappingUserIDs возвращает пользователей, у которых уже есть зарплата,
// период которой пересекается с [start, end] (границы включительно)
func (r *Repository) GetOverlappingUserIDs(ctx context.Context, userIDs []int64, start, end time.Time) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(userIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT user_id").
		From("salaries").
		Where(squirrel.Eq{"user_id": userIDs}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingUserIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingUserIDs - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetOverlappingUserIDs - scan row: %w", ErrScanRow, err)
		}
		result[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingUserIDs - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}

// ListPeriods возвращает различные сохраненные периоды, последние первыми
func (r *Repository) ListPeriods(ctx context.Context) ([]*domain.SalaryPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_date", "end_date", "COUNT(*)").
		From("salaries").
		GroupBy("start_date", "end_date").
		OrderBy("start_date DESC", "end_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPeriods - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPeriods - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.SalaryPeriod, 0)
	for rows.Next() {
		var p domain.SalaryPeriod
		if err := rows.Scan(&p.StartDate, &p.EndDate, &p.Count); err != nil {
			return nil, fmt.Errorf("%w: ListPeriods - scan row: %w", ErrScanRow, err)
		}
		periods = append(periods, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPeriods - rows iteration: %w", ErrScanRow, err)
	}

	return periods, nil
}
