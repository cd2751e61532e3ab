package get_end_times

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClassroomService/pkg/types"
)

// validateRequest валидирует входные данные и разбирает время начала
func validateRequest(req *Request) (types.Clock, error) {
	if req.Date.IsZero() {
		return types.Clock{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Room) == "" {
		return types.Clock{}, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}

	start, err := types.ParseClock(req.Start)
	if err != nil {
		return types.Clock{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return start, nil
}

// validateDate проверяет, что дата попадает в [сегодня, сегодня + windowDays]
func validateDate(date, now time.Time, windowDays int) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(today) || day.After(today.AddDate(0, 0, windowDays)) {
		return ErrDateOutsideWindow
	}

	return nil
}
