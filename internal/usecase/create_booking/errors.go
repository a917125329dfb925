package create_booking

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет съемки не найден
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrPackageUnavailable возвращается, когда пакет скрыт от клиентов
	ErrPackageUnavailable = errors.New("create_booking: package is not available")

	// ErrInvalidDate возвращается при попытке забронировать время в прошлом
	ErrInvalidDate = errors.New("create_booking: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
