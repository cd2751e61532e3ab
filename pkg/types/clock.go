package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidClock возвращается, когда строка не соответствует формату "H:MM AM/PM"
	ErrInvalidClock = errors.New("types: invalid clock format, expected H:MM AM/PM")

	// strictClockPattern формат для нового пользовательского ввода
	strictClockPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})(AM|PM)$`)

	// legacyClockPattern формат, совместимый с уже сохранёнными записями:
	// без якорей, допускает лишние символы вокруг времени
	legacyClockPattern = regexp.MustCompile(`(?i)(\d+):(\d+)(AM|PM)`)
)

// Clock время суток в 12-часовом формате, хранится как минуты от полуночи
type Clock struct {
	minutes int
}

// NewClock создает Clock из количества минут от полуночи
func NewClock(minutes int) Clock {
	return Clock{minutes: minutes}
}

// ParseClock строго разбирает строку вида "9:00 AM" / "12:30pm"
// Пробелы игнорируются, часы 1-12, минуты 0-59
func ParseClock(text string) (Clock, error) {
	clean := stripSpaces(text)

	m := strictClockPattern.FindStringSubmatch(clean)
	if m == nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, text)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q out of range", ErrInvalidClock, text)
	}

	return Clock{minutes: to24Hour(hour, strings.ToUpper(m[3]))*minutesPerHour + minute}, nil
}

// MinutesOrMidnight разбирает время так же, как его разбирали исторические записи:
// при несовпадении с форматом возвращает 0 (полночь), а не ошибку.
// Используется только для чтения сохранённых расписаний и бронирований
func MinutesOrMidnight(text string) int {
	if text == "" {
		return 0
	}

	m := legacyClockPattern.FindStringSubmatch(stripSpaces(text))
	if m == nil {
		return 0
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}

	return to24Hour(hour, strings.ToUpper(m[3]))*minutesPerHour + minute
}

// FormatMinutes форматирует минуты от полуночи в "H:MM AM/PM"
func FormatMinutes(minutes int) string {
	hour := minutes / minutesPerHour
	minute := minutes % minutesPerHour

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// Minutes возвращает количество минут от полуночи
func (c Clock) Minutes() int {
	return c.minutes
}

// String возвращает время в формате "H:MM AM/PM"
func (c Clock) String() string {
	return FormatMinutes(c.minutes)
}

// AddMinutes возвращает новое время, сдвинутое на n минут
// Переход через полночь не допускается
func (c Clock) AddMinutes(n int) (Clock, error) {
	total := c.minutes + n
	if total < 0 || total > minutesPerDay {
		return Clock{}, fmt.Errorf("%w: %s%+d minutes leaves the day", ErrInvalidClock, c, n)
	}
	return Clock{minutes: total}, nil
}

// IsBefore проверяет, что время раньше другого
func (c Clock) IsBefore(other Clock) bool {
	return c.minutes < other.minutes
}

// IsAfter проверяет, что время позже другого
func (c Clock) IsAfter(other Clock) bool {
	return c.minutes > other.minutes
}

// Equal проверяет равенство времени
func (c Clock) Equal(other Clock) bool {
	return c.minutes == other.minutes
}

func to24Hour(hour int, suffix string) int {
	if suffix == "PM" && hour != 12 {
		return hour + 12
	}
	if suffix == "AM" && hour == 12 {
		return 0
	}
	return hour
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
