package teamunavailable

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var entryColumns = []string{
	"u.id",
	"u.team_user_id",
	"u.start_at",
	"u.end_at",
	"u.reason",
	"t.name AS team_user_name",
	"u.created_at",
}

// Repository репозиторий записей о недоступности сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория недоступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о недоступности сотрудника
func (r *Repository) Create(ctx context.Context, entry *domain.TeamUnavailable) (*domain.TeamUnavailable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("team_unavailable").
		Columns("team_user_id", "start_at", "end_at", "reason").
		Values(entry.TeamUserID, entry.StartAt, entry.EndAt, entry.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	return entry, nil
}

// List получает записи о недоступности с фильтрацией по сотруднику и периоду
// Период сопоставляется через пересечение интервалов [start_at, end_at]
func (r *Repository) List(ctx context.Context, filter domain.TeamUnavailableFilter) ([]*domain.TeamUnavailable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(entryColumns...).
		From("team_unavailable u").
		Join("users t ON t.id = u.team_user_id").
		OrderBy("u.start_at ASC")

	if filter.TeamUserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"u.team_user_id": *filter.TeamUserID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"u.end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"u.start_at": *filter.To})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.TeamUnavailable, 0)
	for rows.Next() {
		var entry domain.TeamUnavailable
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.TeamUserID,
			&entry.StartAt,
			&entry.EndAt,
			&entry.Reason,
			&entry.TeamUserName,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// CountDistinctOverlapping считает число активных сотрудников, чья недоступность
// пересекается с интервалом [dayStart, dayEnd]
// Каждый сотрудник учитывается один раз независимо от числа записей
func (r *Repository) CountDistinctOverlapping(ctx context.Context, dayStart, dayEnd time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(DISTINCT u.team_user_id)").
		From("team_unavailable u").
		Join("users t ON t.id = u.team_user_id").
		Where(squirrel.Eq{"t.active": true}).
		Where(squirrel.Lt{"u.start_at": dayEnd}).
		Where(squirrel.Gt{"u.end_at": dayStart}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountDistinctOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: CountDistinctOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет запись о недоступности по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("team_unavailable").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
