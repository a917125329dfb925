package day_blocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

type AvailabilityService interface {
	CreateDayBlock(ctx context.Context, block *domain.DayBlock) (*domain.DayBlock, error)
	ListDayBlocks(ctx context.Context, from, to *time.Time) ([]*domain.DayBlock, error)
	DeleteDayBlock(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
