package probe_capacity

import "time"

// Request модель запроса предварительной проверки доступности
type Request struct {
	StartAt         time.Time
	DurationMinutes int
}

// Response модель ответа
// DayWarning информирует о блокировках дня, но не запрещает отправку заявки
type Response struct {
	Allowed    bool
	Reason     *string
	DayWarning *string
}
