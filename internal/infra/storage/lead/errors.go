package lead

import "errors"

var (
	// ErrLeadNotFound возвращается, когда заявка не найдена
	ErrLeadNotFound = errors.New("lead.storage: lead not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lead.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lead.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("lead.storage: failed to scan row")
)
