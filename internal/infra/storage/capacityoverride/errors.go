package capacityoverride

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда переопределение вместимости не найдено
	ErrOverrideNotFound = errors.New("capacityoverride.repository: capacity override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("capacityoverride.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("capacityoverride.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("capacityoverride.repository: failed to scan row")
)
