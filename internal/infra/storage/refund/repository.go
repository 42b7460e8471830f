package refund

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/psqlbuilder"
)

var refundColumns = []string{
	"id",
	"guest_id",
	"booking_id",
	"amount",
	"reason",
	"status",
	"processed_by_user_id",
	"processed_at",
	"updated_by_user_id",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий возвратов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория возвратов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает возврат
func (r *Repository) Create(ctx context.Context, refund *domain.Refund) (*domain.Refund, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("refunds").
		Columns(
			"guest_id",
			"booking_id",
			"amount",
			"reason",
			"status",
			"processed_by_user_id",
			"processed_at",
			"updated_by_user_id",
		).
		Values(
			refund.GuestID,
			refund.BookingID,
			refund.Amount,
			refund.Reason,
			refund.Status,
			refund.ProcessedBy,
			refund.ProcessedAt,
			refund.UpdatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&refund.ID, &refund.CreatedAt, &refund.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return refund, nil
}

// GetByID получает возврат по ID, внутри транзакции с блокировкой строки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Refund, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(refundColumns...).
		From("refunds").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.ShouldLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	refund, err := scanRefund(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRefundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan refund: %w", ErrScanRow, err)
	}

	return refund, nil
}

// GetByBookingID возвращает все возвраты бронирования, новые первыми
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.Refund, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(refundColumns...).
		From("refunds").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	refunds := make([]*domain.Refund, 0)
	for rows.Next() {
		refund, err := scanRefund(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %w", ErrScanRow, err)
		}
		refunds = append(refunds, refund)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows iteration: %w", ErrScanRow, err)
	}

	return refunds, nil
}

// UpdateStatus сохраняет статус и поля обработки
func (r *Repository) UpdateStatus(ctx context.Context, refund *domain.Refund) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("refunds").
		Set("status", refund.Status).
		Set("processed_by_user_id", refund.ProcessedBy).
		Set("processed_at", refund.ProcessedAt).
		Set("updated_by_user_id", refund.UpdatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": refund.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&refund.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRefundNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

func scanRefund(row rowScanner) (*domain.Refund, error) {
	var (
		refund                          domain.Refund
		guestID, processedBy, updatedBy sql.NullInt64
		processedAt                     sql.NullTime
	)

	err := row.Scan(
		&refund.ID,
		&guestID,
		&refund.BookingID,
		&refund.Amount,
		&refund.Reason,
		&refund.Status,
		&processedBy,
		&processedAt,
		&updatedBy,
		&refund.CreatedAt,
		&refund.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if guestID.Valid {
		refund.GuestID = &guestID.Int64
	}
	if processedBy.Valid {
		refund.ProcessedBy = &processedBy.Int64
	}
	if updatedBy.Valid {
		refund.UpdatedBy = &updatedBy.Int64
	}
	if processedAt.Valid {
		refund.ProcessedAt = &processedAt.Time
	}

	return &refund, nil
}
