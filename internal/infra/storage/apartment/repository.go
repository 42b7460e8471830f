package apartment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/psqlbuilder"
)

// Repository репозиторий квартир
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория квартир
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs возвращает квартиры по ID, упорядоченные по ID.
// Внутри транзакции строки блокируются (FOR UPDATE), порядок блокировки фиксирован.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Apartment, error) {
	if len(ids) == 0 {
		return []*domain.Apartment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"property_id",
		"number",
		"name",
		"price",
		"currency",
		"in_service",
		"cleaned",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("apartments").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id")

	if dbmetrics.ShouldLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	apartments := make([]*domain.Apartment, 0, len(ids))
	for rows.Next() {
		var (
			apt   domain.Apartment
			name  sql.NullString
			price decimal.NullDecimal
		)

		err := rows.Scan(
			&apt.ID,
			&apt.PropertyID,
			&apt.Number,
			&name,
			&price,
			&apt.Currency,
			&apt.InService,
			&apt.Cleaned,
			&apt.IsActive,
			&apt.CreatedAt,
			&apt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %w", ErrScanRow, err)
		}

		if name.Valid {
			apt.Name = &name.String
		}
		if price.Valid {
			apt.Price = &price.Decimal
		}

		apartments = append(apartments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows iteration: %w", ErrScanRow, err)
	}

	return apartments, nil
}

// SetInService обновляет флаг занятости квартиры
func (r *Repository) SetInService(ctx context.Context, id int64, inService bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("apartments").
		Set("in_service", inService).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetInService - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetInService - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetInService - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrApartmentNotFound
	}

	return nil
}

// MarkCleaned ставит cleaned = true всем переданным квартирам
func (r *Repository) MarkCleaned(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("apartments").
		Set("cleaned", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCleaned - build update query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkCleaned - execute update: %w", ErrExecQuery, err)
	}

	return nil
}
