package get_available_rooms

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.RoomType == "" {
		req.RoomType = domain.RoomTypeAll
	}
	if !req.RoomType.IsValidFilter() {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	return nil
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
