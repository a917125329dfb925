package booking_results

import (
	"context"
	"io"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/results"
)

type ResultsService interface {
	Publish(ctx context.Context, bookingID int64, password string) error
	Access(ctx context.Context, bookingID int64, password string, viewer *domain.User) ([]results.ResultLink, error)
	VerifyDownloadToken(ctx context.Context, tokenString string) (*domain.Attachment, error)
}

type AttachmentsService interface {
	Open(ctx context.Context, att *domain.Attachment) (io.ReadCloser, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
