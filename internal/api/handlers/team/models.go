package team

import (
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// CreateMemberRequest HTTP request model
type CreateMemberRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
// Роль и активность выставляет сервис
func (r *CreateMemberRequest) ToDomain() *domain.User {
	return &domain.User{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// SetActiveRequest HTTP request model
type SetActiveRequest struct {
	Active bool `json:"active"`
}
