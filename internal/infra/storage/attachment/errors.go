package attachment

import "errors"

var (
	// ErrAttachmentNotFound возвращается, когда вложение не найдено
	ErrAttachmentNotFound = errors.New("attachment.repository: attachment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("attachment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("attachment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("attachment.repository: failed to scan row")
)
