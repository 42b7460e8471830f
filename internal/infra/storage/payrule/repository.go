package payrule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/psqlbuilder"
)

// Repository репозиторий правил оплаты
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил оплаты
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserIDs возвращает правила оплаты, сгруппированные по пользователю
func (r *Repository) GetByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]*domain.PayRule, error) {
	result := make(map[int64][]*domain.PayRule, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "pay_type", "pay_rate", "created_at", "updated_at").
		From("pay_rules").
		Where(squirrel.Eq{"user_id": userIDs}).
		OrderBy("user_id", "updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserIDs - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rule domain.PayRule
			rate decimal.NullDecimal
		)
		if err := rows.Scan(&rule.ID, &rule.UserID, &rule.PayType, &rate, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByUserIDs - scan row: %w", ErrScanRow, err)
		}
		if rate.Valid {
			rule.PayRate = &rate.Decimal
		}
		result[rule.UserID] = append(result[rule.UserID], &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserIDs - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}
