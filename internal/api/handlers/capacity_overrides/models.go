package capacity_overrides

import (
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// SetCapacityOverrideRequest HTTP request model
// Повторная установка на тот же день перезаписывает значение
type SetCapacityOverrideRequest struct {
	Day      string  `json:"day"` // YYYY-MM-DD
	Capacity int     `json:"capacity"`
	Reason   *string `json:"reason,omitempty"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *SetCapacityOverrideRequest) ToDomain() (*domain.CapacityOverride, error) {
	day, err := time.Parse(domain.DateFormat, r.Day)
	if err != nil {
		return nil, err
	}
	return &domain.CapacityOverride{
		Day:      day,
		Capacity: r.Capacity,
		Reason:   r.Reason,
	}, nil
}
