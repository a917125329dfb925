package domain

import "time"

// DayBlock represents an admin-defined blackout window: a full day
// or a time range inside one day during which bookings are denied
type DayBlock struct {
	ID      int64
	Day     time.Time // Нормализована на полночь в часовом поясе студии
	FullDay bool
	StartAt *time.Time // Обязательны при FullDay = false
	EndAt   *time.Time
	Reason  *string

	CreatedAt time.Time
}

// Bounds returns the effective blocked interval, substituting day
// boundaries for missing sides of a partial block
func (b *DayBlock) Bounds(dayStart, dayEnd time.Time) (time.Time, time.Time) {
	start := dayStart
	end := dayEnd
	if b.StartAt != nil {
		start = *b.StartAt
	}
	if b.EndAt != nil {
		end = *b.EndAt
	}
	return start, end
}

// CapacityOverride represents an explicit per-day capacity that fully
// replaces the computed roster-based capacity (one row per day)
type CapacityOverride struct {
	ID       int64
	Day      time.Time // Уникальный ключ, полночь в часовом поясе студии
	Capacity int       // >= 0, ноль запрещает бронирования на весь день
	Reason   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamUnavailable represents a time range during which a specific
// team member cannot work; reduces the default capacity only
type TeamUnavailable struct {
	ID         int64
	TeamUserID int64
	StartAt    time.Time
	EndAt      time.Time
	Reason     *string

	// Read-only данные из JOIN
	TeamUserName string

	CreatedAt time.Time
}

// TeamUnavailableFilter фильтр для выборки недоступности сотрудников
type TeamUnavailableFilter struct {
	TeamUserID *int64
	From       *time.Time
	To         *time.Time
}
