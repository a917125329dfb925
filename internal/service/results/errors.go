package results

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrResultsNotReady возвращается, когда результаты еще не опубликованы
	ErrResultsNotReady = errors.New("results are not ready")

	// ErrWrongPassword возвращается при неверном пароле доступа
	ErrWrongPassword = errors.New("wrong results password")

	// ErrInvalidToken возвращается при недействительном токене скачивания
	ErrInvalidToken = errors.New("invalid download token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
