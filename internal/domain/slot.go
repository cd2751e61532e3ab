package domain

// TimeSlot фиксированный получасовой интервал [Start, End) в минутах от полуночи
type TimeSlot struct {
	Start int
	End   int
	Label string // "9:00 AM - 9:30 AM"
}

// Interval занятый промежуток аудитории в минутах от полуночи
type Interval struct {
	Start int
	End   int
}

// Duration returns the slot length in minutes
func (s TimeSlot) Duration() int {
	return s.End - s.Start
}
