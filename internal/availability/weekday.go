package availability

import "time"

var shortWeekdays = map[string]string{
	"Sunday":    "Sun",
	"Monday":    "Mon",
	"Tuesday":   "Tue",
	"Wednesday": "Wed",
	"Thursday":  "Thu",
	"Friday":    "Fri",
	"Saturday":  "Sat",
}

// indexed by time.Weekday, Sunday = 0
var weekdayCodes = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ShortWeekday переводит полное название дня в трёхбуквенный код.
// Неизвестные названия усекаются до первых трёх символов
func ShortWeekday(name string) string {
	if code, ok := shortWeekdays[name]; ok {
		return code
	}
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// WeekdayOf возвращает код дня недели для даты
func WeekdayOf(date time.Time) string {
	return weekdayCodes[date.Weekday()]
}
