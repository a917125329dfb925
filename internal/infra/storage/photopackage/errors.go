package photopackage

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет съемки не найден
	ErrPackageNotFound = errors.New("photopackage.repository: package not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("photopackage.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("photopackage.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("photopackage.repository: failed to scan row")
)
