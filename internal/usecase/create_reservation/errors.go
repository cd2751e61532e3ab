package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrDateOutsideWindow возвращается, когда дата в прошлом или дальше окна бронирования
	ErrDateOutsideWindow = errors.New("create_reservation: date is outside the reservation window")

	// ErrRoomNotFound возвращается, когда аудитория неизвестна
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrSlotNotFree возвращается, когда диапазон пересекает занятое время или обед
	ErrSlotNotFree = errors.New("create_reservation: requested range is not free")

	// ErrSlotTaken возвращается, когда на тот же слот уже есть заявка pending/approved
	ErrSlotTaken = errors.New("create_reservation: this time slot was just taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
