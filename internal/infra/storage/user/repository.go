package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PropertyService/internal/domain"
	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/psqlbuilder"
)

// Repository справочник пользователей и сотрудников
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пользователя вместе с закрепленными объектами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	users, err := r.GetByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users[0], nil
}

// GetByIDs получает пользователей по ID, упорядоченных по ID. Отсутствующие ID пропускаются.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"username",
		"first_name",
		"last_name",
		"email",
		"role",
		"department",
		"currency",
		"is_active",
	).
		From("users").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, len(ids))
	byID := make(map[int64]*domain.User, len(ids))
	for rows.Next() {
		var (
			u          domain.User
			department sql.NullString
		)
		err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.FirstName,
			&u.LastName,
			&u.Email,
			&u.Role,
			&department,
			&u.Currency,
			&u.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %w", ErrScanRow, err)
		}
		if department.Valid {
			u.Department = &department.String
		}
		u.PropertyIDs = []int64{}
		users = append(users, &u)
		byID[u.ID] = &u
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows iteration: %w", ErrScanRow, err)
	}

	if len(users) == 0 {
		return users, nil
	}

	if err := r.loadProperties(ctx, executor, byID); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) loadProperties(ctx context.Context, executor dbmetrics.DBExecutor, byID map[int64]*domain.User) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := psqlbuilder.Select("user_id", "property_id").
		From("user_properties").
		Where(squirrel.Eq{"user_id": ids}).
		OrderBy("user_id", "property_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadProperties - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadProperties - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, propertyID int64
		if err := rows.Scan(&userID, &propertyID); err != nil {
			return fmt.Errorf("%w: loadProperties - scan row: %w", ErrScanRow, err)
		}
		if u, ok := byID[userID]; ok {
			u.PropertyIDs = append(u.PropertyIDs, propertyID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadProperties - rows iteration: %w", ErrScanRow, err)
	}

	return nil
}
