package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// EventsQuery параметры выборки событий календаря
type EventsQuery struct {
	From     time.Time
	To       time.Time
	TeamOnly bool
	Viewer   *domain.User
}

// Service проецирует бронирования и блокировки дней в события календаря
type Service struct {
	bookings BookingRepo
	blocks   DayBlockRepo
	location *time.Location
}

// NewService создает сервис календаря
func NewService(bookings BookingRepo, blocks DayBlockRepo, location *time.Location) *Service {
	return &Service{
		bookings: bookings,
		blocks:   blocks,
		location: location,
	}
}

// Events возвращает события за период
// Длинные сессии отображаются как полоса на весь день, блокировки дней
// видны только администраторам как фоновые события
func (s *Service) Events(ctx context.Context, q EventsQuery) ([]*domain.CalendarEvent, error) {
	filter := domain.BookingsFilter{
		From: &q.From,
		To:   &q.To,
	}
	if q.TeamOnly && q.Viewer != nil && q.Viewer.IsTeam() {
		filter.AssignedTeamID = &q.Viewer.ID
	}

	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("Events - list bookings: %w", err)
	}

	events := make([]*domain.CalendarEvent, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, s.projectBooking(b))
	}

	if q.Viewer != nil && q.Viewer.IsAdmin() {
		blocks, err := s.blocks.ListRange(ctx, &q.From, &q.To)
		if err != nil {
			return nil, fmt.Errorf("Events - list day blocks: %w", err)
		}
		for _, block := range blocks {
			events = append(events, s.projectBlock(block))
		}
	}

	return events, nil
}

// projectBooking строит событие из бронирования
// Сессия от восьми часов рисуется полосой со дня начала по день,
// следующий за расчетным днем окончания
func (s *Service) projectBooking(b *domain.Booking) *domain.CalendarEvent {
	event := &domain.CalendarEvent{
		ID:    fmt.Sprintf("booking-%d", b.ID),
		Title: fmt.Sprintf("%s — %s", b.PackageName, b.CustomerName),
		Props: domain.EventProps{
			BookingID:      b.ID,
			Status:         string(b.Status),
			PackageName:    b.PackageName,
			CustomerName:   b.CustomerName,
			AssignedTeamID: b.AssignedTeamID,
		},
	}
	if b.AssignedTeamName != nil {
		event.Props.AssignedTeamName = *b.AssignedTeamName
	}

	if b.IsLongSession() {
		startDay := s.dayStart(b.StartAt)
		endDay := s.dayStart(b.EndAt())
		event.Start = startDay
		event.End = endDay.AddDate(0, 0, 1)
		event.AllDay = true
		return event
	}

	event.Start = b.StartAt
	event.End = b.EndAt()
	return event
}

// projectBlock строит фоновое событие из блокировки дня
func (s *Service) projectBlock(block *domain.DayBlock) *domain.CalendarEvent {
	dayStart := s.dayStart(block.Day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	title := "Закрыто"
	if block.Reason != nil {
		title = *block.Reason
	}

	event := &domain.CalendarEvent{
		ID:      fmt.Sprintf("block-%d", block.ID),
		Title:   title,
		Display: domain.DisplayBackground,
		Props:   domain.EventProps{Type: "block"},
	}

	if block.FullDay {
		event.Start = dayStart
		event.End = dayEnd
		event.AllDay = true
		return event
	}

	event.Start, event.End = block.Bounds(dayStart, dayEnd)
	return event
}

func (s *Service) dayStart(t time.Time) time.Time {
	local := t.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
}
