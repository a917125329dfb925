package day_blocks

import (
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// CreateDayBlockRequest HTTP request model
// Для частичной блокировки (fullDay = false) обязательны startAt и endAt
type CreateDayBlockRequest struct {
	Day     string  `json:"day"` // YYYY-MM-DD
	FullDay bool    `json:"fullDay"`
	StartAt *string `json:"startAt,omitempty"` // RFC3339
	EndAt   *string `json:"endAt,omitempty"`   // RFC3339
	Reason  *string `json:"reason,omitempty"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateDayBlockRequest) ToDomain() (*domain.DayBlock, error) {
	day, err := time.Parse(domain.DateFormat, r.Day)
	if err != nil {
		return nil, err
	}

	block := &domain.DayBlock{
		Day:     day,
		FullDay: r.FullDay,
		Reason:  r.Reason,
	}

	if r.StartAt != nil {
		startAt, err := time.Parse(time.RFC3339, *r.StartAt)
		if err != nil {
			return nil, err
		}
		block.StartAt = &startAt
	}
	if r.EndAt != nil {
		endAt, err := time.Parse(time.RFC3339, *r.EndAt)
		if err != nil {
			return nil, err
		}
		block.EndAt = &endAt
	}

	return block, nil
}
