package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/psqlbuilder"
)

// Repository репозиторий задач
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает задачу с исполнителями и квартирами.
// Внутри транзакции строка задачи блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"title",
		"status",
		"duration_minutes",
		"property_id",
		"added_by_user_id",
		"created_at",
		"updated_at",
	).
		From("tasks").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.ShouldLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var (
		t                   domain.Task
		duration            decimal.NullDecimal
		propertyID, addedBy sql.NullInt64
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Title,
		&t.Status,
		&duration,
		&propertyID,
		&addedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task: %w", ErrScanRow, err)
	}

	if duration.Valid {
		t.DurationMinutes = &duration.Decimal
	}
	if propertyID.Valid {
		t.PropertyID = &propertyID.Int64
	}
	if addedBy.Valid {
		t.AddedBy = &addedBy.Int64
	}

	if t.AssigneeIDs, err = r.getLinkedIDs(ctx, executor, "task_assignees", "user_id", id); err != nil {
		return nil, err
	}
	if t.ApartmentIDs, err = r.getLinkedIDs(ctx, executor, "task_apartments", "apartment_id", id); err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *Repository) getLinkedIDs(ctx context.Context, executor dbmetrics.DBExecutor, table, column string, taskID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select(column).
		From(table).
		Where(squirrel.Eq{"task_id": taskID}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getLinkedIDs(%s) - build select query: %w", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getLinkedIDs(%s) - execute select: %w", ErrExecQuery, table, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: getLinkedIDs(%s) - scan row: %w", ErrScanRow, table, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getLinkedIDs(%s) - rows iteration: %w", ErrScanRow, table, err)
	}

	return ids, nil
}

// UpdateStatus меняет статус задачи
func (r *Repository) UpdateStatus(ctx context.Context, t *domain.Task) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tasks").
		Set("status", t.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// GetCompletedMinutesByUser суммирует длительность завершенных задач по исполнителям.
// Учитываются задачи, у которых дата updated_at попадает в [start, end].
// Если propertyID задан, берутся только задачи объекта и только закрепленные за ним сотрудники.
func (r *Repository) GetCompletedMinutesByUser(
	ctx context.Context,
	start, end time.Time,
	propertyID *int64,
) (map[int64]decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("ta.user_id", "COALESCE(SUM(t.duration_minutes), 0)").
		From("tasks t").
		Join("task_assignees ta ON ta.task_id = t.id").
		Where(squirrel.Eq{"t.status": domain.TaskCompleted}).
		Where("t.updated_at::date BETWEEN ? AND ?", start, end).
		GroupBy("ta.user_id")

	if propertyID != nil {
		selectBuilder = selectBuilder.
			Join("user_properties up ON up.user_id = ta.user_id AND up.property_id = ?", *propertyID).
			Where(squirrel.Eq{"t.property_id": *propertyID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompletedMinutesByUser - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompletedMinutesByUser - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var (
			userID  int64
			minutes decimal.Decimal
		)
		if err := rows.Scan(&userID, &minutes); err != nil {
			return nil, fmt.Errorf("%w: GetCompletedMinutesByUser - scan row: %w", ErrScanRow, err)
		}
		result[userID] = minutes
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCompletedMinutesByUser - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}
