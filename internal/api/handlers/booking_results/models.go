package booking_results

import (
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/service/results"
)

// PasswordRequest HTTP request model для публикации и доступа к результатам
type PasswordRequest struct {
	Password string `json:"password"`
}

// ResultLinkResponse HTTP модель подписанной ссылки на файл
type ResultLinkResponse struct {
	AttachmentID int64  `json:"attachmentId"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ExpiresAt    string `json:"expiresAt"`
}

// FromResultLinks конвертирует ссылки сервиса в HTTP модели
func FromResultLinks(links []results.ResultLink) []ResultLinkResponse {
	result := make([]ResultLinkResponse, 0, len(links))
	for _, link := range links {
		result = append(result, ResultLinkResponse{
			AttachmentID: link.AttachmentID,
			Name:         link.Name,
			URL:          link.URL,
			ExpiresAt:    link.ExpiresAt.Format(time.RFC3339),
		})
	}
	return result
}
