package schedule

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
	"github.com/m04kA/SMC-PropertyService/pkg/types"
)

var scheduleColumns = []string{
	"id",
	"staff_id",
	"day",
	"hours",
	"week_number",
	"date",
	"start_time",
	"end_time",
	"added_by_user_id",
	"created_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий смен сотрудников
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Строк в одном INSERT: 8 параметров на строку, PostgreSQL принимает не больше 65535
const insertBatchSize = 1000

var insertColumns = []string{"staff_id", "day", "hours", "week_number", "date", "start_time", "end_time", "added_by_user_id"}

// CreateBatch вставляет смены пачками по insertBatchSize и проставляет им ID.
// Атомарность обеспечивает транзакция вызывающего.
func (r *Repository) CreateBatch(ctx context.Context, schedules []*domain.StaffSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for start := 0; start < len(schedules); start += insertBatchSize {
		chunk := schedules[start:min(start+insertBatchSize, len(schedules))]
		if err := r.insertChunk(ctx, executor, chunk); err != nil {
			return err
		}
	}

	return nil
}

func buildInsert(schedules []*domain.StaffSchedule) (string, []interface{}, error) {
	insert := psqlbuilder.Insert("staff_schedules").Columns(insertColumns...)
	for _, s := range schedules {
		insert = insert.Values(s.StaffID, s.Day, s.Hours, s.WeekNumber, s.Date, s.StartTime, s.EndTime, s.AddedBy)
	}
	return insert.Suffix("RETURNING id, created_at").ToSql()
}

func (r *Repository) insertChunk(ctx context.Context, executor dbmetrics.DBExecutor, schedules []*domain.StaffSchedule) error {
	query, args, err := buildInsert(schedules)
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	// PostgreSQL возвращает строки RETURNING в порядке VALUES
	i := 0
	for rows.Next() {
		if i >= len(schedules) {
			break
		}
		if err := rows.Scan(&schedules[i].ID, &schedules[i].CreatedAt); err != nil {
			return fmt.Errorf("%w: CreateBatch - scan row: %w", ErrScanRow, err)
		}
		i++
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: CreateBatch - rows iteration: %w", ErrScanRow, err)
	}

	return nil
}

// DeleteByStaffInRange удаляет смены сотрудников с датой в [from, to]
func (r *Repository) DeleteByStaffInRange(ctx context.Context, staffIDs []int64, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByStaffInRange - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByStaffInRange - execute delete: %w", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByStaffInRange - rows affected: %w", ErrExecQuery, err)
	}

	return deleted, nil
}

// GetByID получает смену по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %w", ErrScanRow, err)
	}

	return schedule, nil
}

// List возвращает смены по фильтру, упорядоченные по дате и времени начала
func (r *Repository) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules").
		OrderBy("date", "start_time NULLS FIRST", "staff_id")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.WeekNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"week_number": *filter.WeekNumber})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.StaffSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}

	return schedules, nil
}

// Delete удаляет смену
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func scanSchedule(row rowScanner) (*domain.StaffSchedule, error) {
	var (
		s          domain.StaffSchedule
		start, end types.TimeString
		addedBy    sql.NullInt64
	)

	err := row.Scan(
		&s.ID,
		&s.StaffID,
		&s.Day,
		&s.Hours,
		&s.WeekNumber,
		&s.Date,
		&start,
		&end,
		&addedBy,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if !start.IsZero() {
		s.StartTime = &start
	}
	if !end.IsZero() {
		s.EndTime = &end
	}
	if addedBy.Valid {
		s.AddedBy = &addedBy.Int64
	}

	return &s, nil
}
