package get_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_rooms: invalid input data")

	// ErrDateOutsideWindow возвращается, когда дата в прошлом или дальше окна бронирования
	ErrDateOutsideWindow = errors.New("get_available_rooms: date is outside the reservation window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_rooms: internal error")
)
