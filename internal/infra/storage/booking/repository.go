package booking

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

// bookingColumns колонки bookings с JOIN на пакет, клиента и сотрудника
var bookingColumns = []string{
	"b.id",
	"b.customer_id",
	"b.package_id",
	"b.assigned_team_id",
	"b.start_at",
	"b.duration_minutes",
	"b.status",
	"b.session_status",
	"b.location",
	"b.notes",
	"b.results_password_hash",
	"p.name AS package_name",
	"c.name AS customer_name",
	"c.email AS customer_email",
	"t.name AS assigned_team_name",
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

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"package_id",
			"assigned_team_id",
			"start_at",
			"duration_minutes",
			"status",
			"session_status",
			"location",
			"notes",
		).
		Values(
			booking.CustomerID,
			booking.PackageID,
			booking.AssignedTeamID,
			booking.StartAt,
			booking.DurationMinutes,
			booking.Status,
			booking.SessionStatus,
			booking.Location,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с данными пакета, клиента и сотрудника
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией по клиенту, сотруднику, периоду и статусу
// Для выборок по периоду сортирует по start_at ASC, иначе сначала новые
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings()

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.customer_id": *filter.CustomerID})
	}
	if filter.AssignedTeamID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.assigned_team_id": *filter.AssignedTeamID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.start_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.start_at": *filter.To})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}

	if filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.OrderBy("b.start_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.start_at DESC")
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

	return r.scanBookings(rows)
}

// GetConfirmedStartingBefore получает CONFIRMED бронирования с start_at раньше endAt,
// опционально исключая одно бронирование (используется при повторном подтверждении,
// чтобы бронирование не считалось против самого себя)
// Внутри транзакции строки блокируются FOR UPDATE OF b
func (r *Repository) GetConfirmedStartingBefore(ctx context.Context, endAt time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings().
		Where(squirrel.Eq{"b.status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"b.start_at": endAt})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedStartingBefore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedStartingBefore - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.update(ctx, "UpdateStatus", id, map[string]interface{}{
		"status":     status,
		"updated_at": squirrel.Expr("NOW()"),
	})
}

// Assign назначает или снимает сотрудника с бронирования вместе со сменой статуса
func (r *Repository) Assign(ctx context.Context, id int64, teamID *int64, status domain.BookingStatus) error {
	return r.update(ctx, "Assign", id, map[string]interface{}{
		"assigned_team_id": teamID,
		"status":           status,
		"updated_at":       squirrel.Expr("NOW()"),
	})
}

// UpdateSessionStatus обновляет статус сессии
func (r *Repository) UpdateSessionStatus(ctx context.Context, id int64, status domain.SessionStatus) error {
	return r.update(ctx, "UpdateSessionStatus", id, map[string]interface{}{
		"session_status": status,
		"updated_at":     squirrel.Expr("NOW()"),
	})
}

// SetResultsPasswordHash сохраняет bcrypt-хэш пароля доступа к результатам
func (r *Repository) SetResultsPasswordHash(ctx context.Context, id int64, hash string) error {
	return r.update(ctx, "SetResultsPasswordHash", id, map[string]interface{}{
		"results_password_hash": hash,
		"updated_at":            squirrel.Expr("NOW()"),
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, sets map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").Where(squirrel.Eq{"id": id})
	for column, value := range sets {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("packages p ON p.id = b.package_id").
		Join("users c ON c.id = b.customer_id").
		LeftJoin("users t ON t.id = b.assigned_team_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var teamName sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.PackageID,
		&booking.AssignedTeamID,
		&booking.StartAt,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.SessionStatus,
		&booking.Location,
		&booking.Notes,
		&booking.ResultsPasswordHash,
		&booking.PackageName,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&teamName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if teamName.Valid {
		booking.AssignedTeamName = &teamName.String
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
