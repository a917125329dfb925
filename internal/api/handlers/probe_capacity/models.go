package probe_capacity

import (
	"time"

	probeCapacity "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/probe_capacity"
)

// ProbeCapacityRequest HTTP request model
type ProbeCapacityRequest struct {
	StartAt         string `json:"startAt"` // RFC3339
	DurationMinutes int    `json:"durationMinutes"`
}

// ProbeCapacityResponse HTTP response model
// dayWarning предупреждает о блокировках дня, но не запрещает отправку заявки
type ProbeCapacityResponse struct {
	Allowed    bool    `json:"allowed"`
	Reason     *string `json:"reason,omitempty"`
	DayWarning *string `json:"dayWarning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProbeCapacityRequest) ToUseCaseRequest() (*probeCapacity.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}
	return &probeCapacity.Request{
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *probeCapacity.Response) *ProbeCapacityResponse {
	return &ProbeCapacityResponse{
		Allowed:    resp.Allowed,
		Reason:     resp.Reason,
		DayWarning: resp.DayWarning,
	}
}
