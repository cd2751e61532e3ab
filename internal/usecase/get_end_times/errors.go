package get_end_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_end_times: invalid input data")

	// ErrDateOutsideWindow возвращается, когда дата в прошлом или дальше окна бронирования
	ErrDateOutsideWindow = errors.New("get_end_times: date is outside the reservation window")

	// ErrRoomNotFound возвращается, когда аудитория не известна ни одному расписанию
	ErrRoomNotFound = errors.New("get_end_times: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_end_times: internal error")
)
