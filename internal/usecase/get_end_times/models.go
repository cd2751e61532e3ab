package get_end_times

import "time"

// Request модель запроса допустимых времён окончания
type Request struct {
	Date  time.Time
	Room  string
	Start string // "9:00 AM"
}

// Response модель ответа
type Response struct {
	Room       string
	DateLabel  string
	Start      string   // нормализованное время начала
	StartTimes []string // все допустимые начала, для выбора начала
	EndTimes   []string // пусто, если Start не начало свободного слота
}
