package team_unavailable

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type AvailabilityService interface {
	CreateUnavailable(ctx context.Context, entry *domain.TeamUnavailable) (*domain.TeamUnavailable, error)
	ListUnavailable(ctx context.Context, filter domain.TeamUnavailableFilter) ([]*domain.TeamUnavailable, error)
	DeleteUnavailable(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
