package team

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type TeamService interface {
	CreateMember(ctx context.Context, u *domain.User) (*domain.User, error)
	ListMembers(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
