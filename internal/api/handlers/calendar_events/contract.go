package calendar_events

import (
	"context"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/internal/service/calendar"
)

type CalendarService interface {
	Events(ctx context.Context, q calendar.EventsQuery) ([]*domain.CalendarEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
