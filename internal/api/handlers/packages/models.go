package packages

import (
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// PackageRequest HTTP request model для создания и обновления пакета
type PackageRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Visible         *bool   `json:"visible,omitempty"` // По умолчанию true
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *PackageRequest) ToDomain(id int64) *domain.Package {
	visible := true
	if r.Visible != nil {
		visible = *r.Visible
	}
	return &domain.Package{
		ID:              id,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Visible:         visible,
	}
}
