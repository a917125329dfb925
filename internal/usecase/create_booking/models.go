package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
)

// Request модель запроса на создание бронирования
// Actor - пользователь, выполняющий запрос; админ может бронировать
// от имени клиента, указав CustomerID
type Request struct {
	Actor      *domain.User
	CustomerID int64
	PackageID  int64
	StartAt    time.Time
	Location   *string
	Notes      *string
}

// Response модель ответа
// При нехватке мест Allowed = false и Booking = nil, это не ошибка
type Response struct {
	Allowed bool
	Reason  *string
	Booking *domain.Booking
}
