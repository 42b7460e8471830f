package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/psqlbuilder"
)

const (
	pqForeignKeyViolation = "23503"
	guestForeignKey       = "bookings_guest_id_fkey"
)

var bookingColumns = []string{
	"b.id",
	"b.guest_id",
	"b.start_date",
	"b.end_date",
	"b.date_of_reservation",
	"b.status",
	"b.added_by_user_id",
	"b.check_in_by_user_id",
	"b.check_out_by_user_id",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование (без квартир, их привязывает SetApartments).
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"guest_id",
			"start_date",
			"end_date",
			"status",
			"added_by_user_id",
			"check_in_by_user_id",
		).
		Values(
			booking.GuestID,
			booking.StartDate,
			booking.EndDate,
			booking.Status,
			booking.AddedBy,
			booking.CheckInBy,
		).
		Suffix("RETURNING id, date_of_reservation, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.DateOfReservation,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation && pqErr.Constraint == guestForeignKey {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// SetApartments заменяет набор квартир бронирования
func (r *Repository) SetApartments(ctx context.Context, bookingID int64, apartmentIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_apartments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetApartments - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetApartments - execute delete: %w", ErrExecQuery, err)
	}

	if len(apartmentIDs) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("booking_apartments").Columns("booking_id", "apartment_id")
	for _, id := range apartmentIDs {
		insert = insert.Values(bookingID, id)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetApartments - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetApartments - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование по ID вместе с ID квартир.
// Внутри транзакции строка бронирования блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id})

	if dbmetrics.ShouldLockRows(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	apartmentIDs, err := r.getApartmentIDs(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	booking.ApartmentIDs = apartmentIDs

	return booking, nil
}

func (r *Repository) getApartmentIDs(ctx context.Context, executor DBExecutor, bookingID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select("apartment_id").
		From("booking_apartments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("apartment_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getApartmentIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getApartmentIDs - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: getApartmentIDs - scan row: %w", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getApartmentIDs - rows iteration: %w", ErrScanRow, err)
	}

	return ids, nil
}

// GetBlockingByApartment возвращает бронирования квартиры, которые пересекаются с [start, end)
// и находятся в блокирующем статусе. Точную проверку выполняет domain.FindOverlap.
func (r *Repository) GetBlockingByApartment(ctx context.Context, apartmentID int64, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("booking_apartments ba ON ba.booking_id = b.id").
		Where(squirrel.Eq{"ba.apartment_id": apartmentID}).
		Where(squirrel.Lt{"b.start_date": end}).
		Where(squirrel.Gt{"b.end_date": start}).
		Where(squirrel.NotEq{"b.status": domain.OverlapExcludedStatuses}).
		OrderBy("b.start_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByApartment - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByApartment - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBlockingByApartment - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByApartment - rows iteration: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// HasCheckedIn проверяет, есть ли у квартиры бронирование со статусом checked_in
func (r *Repository) HasCheckedIn(ctx context.Context, apartmentID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings b").
		Join("booking_apartments ba ON ba.booking_id = b.id").
		Where(squirrel.Eq{"ba.apartment_id": apartmentID}).
		Where(squirrel.Eq{"b.status": domain.StatusCheckedIn}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasCheckedIn - build select query: %w", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasCheckedIn - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Update обновляет даты, статус и аудит бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_date", booking.StartDate).
		Set("end_date", booking.EndDate).
		Set("status", booking.Status).
		Set("check_in_by_user_id", booking.CheckInBy).
		Set("check_out_by_user_id", booking.CheckOutBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus меняет только статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                                   domain.Booking
		guestID, addedBy, checkIn, checkOut sql.NullInt64
	)

	err := row.Scan(
		&b.ID,
		&guestID,
		&b.StartDate,
		&b.EndDate,
		&b.DateOfReservation,
		&b.Status,
		&addedBy,
		&checkIn,
		&checkOut,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.GuestID = nullInt64(guestID)
	b.AddedBy = nullInt64(addedBy)
	b.CheckInBy = nullInt64(checkIn)
	b.CheckOutBy = nullInt64(checkOut)

	return &b, nil
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
