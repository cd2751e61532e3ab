package faculty

import "errors"

var (
	// ErrFacultyNotFound возвращается, когда карточка преподавателя не найдена
	ErrFacultyNotFound = errors.New("faculty.repository: faculty record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("faculty.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("faculty.repository: failed to scan row")

	// ErrDecode возвращается, если JSONB с часами не разбирается
	ErrDecode = errors.New("faculty.repository: failed to decode non-teaching hours")
)
