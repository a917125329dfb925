package availability

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка дня не найдена
	ErrBlockNotFound = errors.New("day block not found")

	// ErrOverrideNotFound возвращается, когда переопределение вместимости не найдено
	ErrOverrideNotFound = errors.New("capacity override not found")

	// ErrEntryNotFound возвращается, когда запись о недоступности не найдена
	ErrEntryNotFound = errors.New("unavailability entry not found")

	// ErrUserNotFound возвращается, когда сотрудник не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrNotTeamMember возвращается, когда пользователь не является сотрудником
	ErrNotTeamMember = errors.New("user is not a team member")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
