package domain

import "time"

// Package represents a photography package offered by the studio
type Package struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Visible         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
