package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/pkg/types"
)

// validateRequest валидирует входные данные и разбирает время начала и конца
func validateRequest(req *Request) (types.Clock, types.Clock, error) {
	var zero types.Clock

	req.RequesterName = strings.TrimSpace(req.RequesterName)
	req.Room = strings.TrimSpace(req.Room)

	if req.RequesterName == "" {
		return zero, zero, fmt.Errorf("%w: requester is required", ErrInvalidInput)
	}
	if req.Room == "" {
		return zero, zero, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Room) > domain.MaxRoomNameLength {
		return zero, zero, fmt.Errorf("%w: room name is too long", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return zero, zero, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return zero, zero, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	start, err := types.ParseClock(req.Start)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	end, err := types.ParseClock(req.End)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}
	if !end.IsAfter(start) {
		return zero, zero, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	return start, end, nil
}

// validateDate проверяет, что дата попадает в [сегодня, сегодня + windowDays]
func validateDate(date, now time.Time, windowDays int) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrDateOutsideWindow)
	}
	if day.After(today.AddDate(0, 0, windowDays)) {
		return fmt.Errorf("%w: can only reserve %d days in advance", ErrDateOutsideWindow, windowDays)
	}

	return nil
}
