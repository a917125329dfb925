package attachments

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	attachmentRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/attachment"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
)

// Категории локального хранилища по типу вложения
var storeCategories = map[domain.AttachmentType]string{
	domain.AttachmentCustomerReference: "references",
	domain.AttachmentSessionResult:     "results",
}

// Service загрузка и выдача файлов, привязанных к бронированиям
type Service struct {
	bookings    BookingRepository
	attachments AttachmentRepository
	store       FileStore
	logger      Logger
}

// NewService создает сервис вложений
func NewService(bookings BookingRepository, attachments AttachmentRepository, store FileStore, logger Logger) *Service {
	return &Service{
		bookings:    bookings,
		attachments: attachments,
		store:       store,
		logger:      logger,
	}
}

// Upload сохраняет файл в локальное хранилище и регистрирует вложение
// Клиент загружает референсы к своему бронированию, результаты загружают
// админ и назначенный сотрудник
func (s *Service) Upload(ctx context.Context, bookingID int64, attType domain.AttachmentType, filename string, r io.Reader, viewer *domain.User) (*domain.Attachment, error) {
	if !attType.Valid() {
		return nil, fmt.Errorf("%w: unknown attachment type %q", ErrInvalidInput, attType)
	}
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Upload: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Upload: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Upload - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUploadAccess(booking, attType, viewer); err != nil {
		s.logger.Warn("Upload: access denied for user=%d to booking id=%d", viewer.ID, bookingID)
		return nil, err
	}

	key, err := s.store.Save(storeCategories[attType], filename, r)
	if err != nil {
		s.logger.Error("Upload: store error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Upload - store error: %v", ErrInternal, err)
	}

	att := &domain.Attachment{
		BookingID: bookingID,
		Type:      attType,
		Name:      filename,
		FileKey:   key,
	}
	created, err := s.attachments.Create(ctx, att)
	if err != nil {
		// Файл без записи в БД не нужен
		if removeErr := s.store.Remove(key); removeErr != nil {
			s.logger.Warn("Upload: failed to remove orphan file %s: %v", key, removeErr)
		}
		s.logger.Error("Upload: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Upload - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upload: attachment id=%d (%s) added to booking id=%d", created.ID, attType, bookingID)
	return created, nil
}

// ListByBooking возвращает вложения бронирования
func (s *Service) ListByBooking(ctx context.Context, bookingID int64, attType *domain.AttachmentType) ([]*domain.Attachment, error) {
	result, err := s.attachments.ListByBooking(ctx, bookingID, attType)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// Open открывает файл вложения для чтения
func (s *Service) Open(ctx context.Context, att *domain.Attachment) (io.ReadCloser, error) {
	reader, err := s.store.Open(att.FileKey)
	if err != nil {
		s.logger.Error("Open: store error for attachment id=%d: %v", att.ID, err)
		return nil, fmt.Errorf("%w: Open - store error: %v", ErrInternal, err)
	}
	return reader, nil
}

// Delete удаляет вложение вместе с файлом
func (s *Service) Delete(ctx context.Context, id int64) error {
	att, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attachmentRepo.ErrAttachmentNotFound) {
			return ErrAttachmentNotFound
		}
		s.logger.Error("Delete: repository error for attachment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.attachments.Delete(ctx, id); err != nil {
		if errors.Is(err, attachmentRepo.ErrAttachmentNotFound) {
			return ErrAttachmentNotFound
		}
		s.logger.Error("Delete: repository error for attachment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.store.Remove(att.FileKey); err != nil {
		s.logger.Warn("Delete: failed to remove file %s: %v", att.FileKey, err)
	}

	s.logger.Info("Delete: removed attachment id=%d", id)
	return nil
}

// checkUploadAccess проверяет право загрузки вложения данного типа
func (s *Service) checkUploadAccess(booking *domain.Booking, attType domain.AttachmentType, viewer *domain.User) error {
	if viewer.IsAdmin() {
		return nil
	}

	switch attType {
	case domain.AttachmentCustomerReference:
		if booking.CustomerID == viewer.ID {
			return nil
		}
	case domain.AttachmentSessionResult:
		if viewer.IsTeam() && booking.AssignedTeamID != nil && *booking.AssignedTeamID == viewer.ID {
			return nil
		}
	}

	return ErrAccessDenied
}
