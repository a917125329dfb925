package results

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	attachmentRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/attachment"
	bookingRepo "github.com/m04kA/SMC-PhotoStudioService/internal/infra/storage/booking"
)

// ResultLink подписанная ссылка на скачивание файла результатов
type ResultLink struct {
	AttachmentID int64
	Name         string
	URL          string
	ExpiresAt    time.Time
}

// downloadClaims полезная нагрузка токена скачивания
type downloadClaims struct {
	AttachmentID int64 `json:"attachmentId"`
	BookingID    int64 `json:"bookingId"`
	jwt.RegisteredClaims
}

// Service доступ клиентов к результатам съемки: публикация с паролем,
// проверка пароля и выдача подписанных ссылок на скачивание
type Service struct {
	bookings    BookingRepository
	attachments AttachmentRepository
	mailer      Mailer
	logger      Logger

	baseURL     string
	tokenSecret []byte
	tokenTTL    time.Duration
}

// NewService создает сервис результатов
func NewService(
	bookings BookingRepository,
	attachments AttachmentRepository,
	mailer Mailer,
	logger Logger,
	baseURL string,
	tokenSecret string,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		bookings:    bookings,
		attachments: attachments,
		mailer:      mailer,
		logger:      logger,
		baseURL:     baseURL,
		tokenSecret: []byte(tokenSecret),
		tokenTTL:    tokenTTL,
	}
}

// Publish публикует результаты: сохраняет хэш пароля доступа, переводит
// сессию в WAITING_RESULTS и уведомляет клиента письмом
func (s *Service) Publish(ctx context.Context, bookingID int64, password string) error {
	if len(password) < 4 {
		return fmt.Errorf("%w: password must be at least 4 characters", ErrInvalidInput)
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Publish: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Publish: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Publish - repository error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Publish: hash error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Publish - hash error: %v", ErrInternal, err)
	}

	if err := s.bookings.SetResultsPasswordHash(ctx, bookingID, string(hash)); err != nil {
		s.logger.Error("Publish: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Publish - repository error: %v", ErrInternal, err)
	}

	if booking.SessionStatus.CanTransitionTo(domain.SessionWaitingResults) {
		if err := s.bookings.UpdateSessionStatus(ctx, bookingID, domain.SessionWaitingResults); err != nil {
			s.logger.Warn("Publish: failed to advance session status for booking id=%d: %v", bookingID, err)
		}
	}

	if err := s.mailer.SendResultsReady(ctx, booking); err != nil {
		s.logger.Warn("Publish: failed to send results email for booking id=%d: %v", bookingID, err)
	}

	s.logger.Info("Publish: results published for booking id=%d", bookingID)
	return nil
}

// Access проверяет пароль доступа и возвращает подписанные ссылки
// на файлы результатов
// Доступно владельцу бронирования и админу
func (s *Service) Access(ctx context.Context, bookingID int64, password string, viewer *domain.User) ([]ResultLink, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Access: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Access: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Access - repository error: %v", ErrInternal, err)
	}

	if !viewer.IsAdmin() && booking.CustomerID != viewer.ID {
		s.logger.Warn("Access: access denied for user=%d to booking id=%d", viewer.ID, bookingID)
		return nil, ErrAccessDenied
	}

	if booking.ResultsPasswordHash == nil {
		return nil, ErrResultsNotReady
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*booking.ResultsPasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Access: wrong password for booking id=%d", bookingID)
		return nil, ErrWrongPassword
	}

	resultType := domain.AttachmentSessionResult
	attachments, err := s.attachments.ListByBooking(ctx, bookingID, &resultType)
	if err != nil {
		s.logger.Error("Access: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Access - repository error: %v", ErrInternal, err)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	links := make([]ResultLink, 0, len(attachments))
	for _, att := range attachments {
		token, err := s.signToken(att.ID, bookingID, expiresAt)
		if err != nil {
			s.logger.Error("Access: sign error for attachment id=%d: %v", att.ID, err)
			return nil, fmt.Errorf("%w: Access - sign error: %v", ErrInternal, err)
		}
		links = append(links, ResultLink{
			AttachmentID: att.ID,
			Name:         att.Name,
			URL:          fmt.Sprintf("%s/api/v1/results/download?token=%s", s.baseURL, url.QueryEscape(token)),
			ExpiresAt:    expiresAt,
		})
	}

	s.logger.Info("Access: issued %d result links for booking id=%d", len(links), bookingID)
	return links, nil
}

// VerifyDownloadToken проверяет подпись и срок действия токена скачивания
// и возвращает вложение, к которому он дает доступ
func (s *Service) VerifyDownloadToken(ctx context.Context, tokenString string) (*domain.Attachment, error) {
	var claims downloadClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.tokenSecret, nil
	})
	if err != nil || !token.Valid {
		s.logger.Warn("VerifyDownloadToken: invalid token: %v", err)
		return nil, ErrInvalidToken
	}

	att, err := s.attachments.GetByID(ctx, claims.AttachmentID)
	if err != nil {
		if errors.Is(err, attachmentRepo.ErrAttachmentNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("VerifyDownloadToken: repository error for attachment id=%d: %v", claims.AttachmentID, err)
		return nil, fmt.Errorf("%w: VerifyDownloadToken - repository error: %v", ErrInternal, err)
	}

	if att.BookingID != claims.BookingID || att.Type != domain.AttachmentSessionResult {
		return nil, ErrInvalidToken
	}

	return att, nil
}

func (s *Service) signToken(attachmentID, bookingID int64, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, downloadClaims{
		AttachmentID: attachmentID,
		BookingID:    bookingID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString(s.tokenSecret)
}
