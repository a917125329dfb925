package team_unavailable

import (
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// CreateUnavailableRequest HTTP request model
// Сотрудник может не указывать teamUserId - тогда запись создается на него
type CreateUnavailableRequest struct {
	TeamUserID *int64  `json:"teamUserId,omitempty"`
	StartAt    string  `json:"startAt"` // RFC3339
	EndAt      string  `json:"endAt"`   // RFC3339
	Reason     *string `json:"reason,omitempty"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateUnavailableRequest) ToDomain(defaultUserID int64) (*domain.TeamUnavailable, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}
	endAt, err := time.Parse(time.RFC3339, r.EndAt)
	if err != nil {
		return nil, err
	}

	teamUserID := defaultUserID
	if r.TeamUserID != nil {
		teamUserID = *r.TeamUserID
	}

	return &domain.TeamUnavailable{
		TeamUserID: teamUserID,
		StartAt:    startAt,
		EndAt:      endAt,
		Reason:     r.Reason,
	}, nil
}
