package teamunavailable

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись о недоступности не найдена
	ErrEntryNotFound = errors.New("teamunavailable.repository: unavailability entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("teamunavailable.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("teamunavailable.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("teamunavailable.repository: failed to scan row")
)
