package attachment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var attachmentColumns = []string{
	"id",
	"booking_id",
	"type",
	"name",
	"file_key",
	"uploaded_at",
}

// Repository репозиторий вложений бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вложений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о вложении
func (r *Repository) Create(ctx context.Context, att *domain.Attachment) (*domain.Attachment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("attachments").
		Columns("booking_id", "type", "name", "file_key").
		Values(att.BookingID, att.Type, att.Name, att.FileKey).
		Suffix("RETURNING id, uploaded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var uploadedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&att.ID, &uploadedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	att.UploadedAt = uploadedAt.Time
	return att, nil
}

// GetByID получает вложение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Attachment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(attachmentColumns...).
		From("attachments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	att, err := r.scanAttachment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan attachment: %v", ErrScanRow, err)
	}

	return att, nil
}

// ListByBooking получает вложения бронирования, опционально фильтруя по типу
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64, attType *domain.AttachmentType) ([]*domain.Attachment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(attachmentColumns...).
		From("attachments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("uploaded_at ASC")

	if attType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *attType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attachments := make([]*domain.Attachment, 0)
	for rows.Next() {
		att, err := r.scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}
		attachments = append(attachments, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return attachments, nil
}

// Delete удаляет запись о вложении
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("attachments").
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
		return ErrAttachmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAttachment(row rowScanner) (*domain.Attachment, error) {
	var att domain.Attachment
	var uploadedAt sql.NullTime

	err := row.Scan(
		&att.ID,
		&att.BookingID,
		&att.Type,
		&att.Name,
		&att.FileKey,
		&uploadedAt,
	)
	if err != nil {
		return nil, err
	}

	att.UploadedAt = uploadedAt.Time
	return &att, nil
}
