package domain

import "time"

// ScheduleEntry одно повторяющееся занятие из расписания
type ScheduleEntry struct {
	Key               string // "Monday_8:30AM"
	Weekday           string // полное название дня, префикс ключа
	Room              string
	StartTime         string
	EndTime           string
	Subject           string
	SectionName       string
	SubstituteTeacher string
}

// ScheduleDocument недельное расписание программы или преподавателя.
// Документы редактируются администраторами, сервис их только читает.
type ScheduleDocument struct {
	ID                   string
	Program              string
	Entries              []ScheduleEntry
	ProfessorAssignments map[string]string // ключ записи -> преподаватель
	UpdatedAt            time.Time
}

// ProfessorFor returns the professor assigned to the entry key
func (d *ScheduleDocument) ProfessorFor(key string) string {
	if d.ProfessorAssignments == nil {
		return ""
	}
	return d.ProfessorAssignments[key]
}

// NonTeachingHour консультация или административное время преподавателя
type NonTeachingHour struct {
	Day      string
	Time     string
	Hours    float64
	Type     string // consultation | administrative
	Location string
}

// FacultyRecord карточка преподавателя
type FacultyRecord struct {
	ID               int64
	Professor        string
	NonTeachingHours []NonTeachingHour
	UpdatedAt        time.Time
}

// ScheduleItemType тип элемента недельного расписания преподавателя
type ScheduleItemType string

const (
	ScheduleItemClass        ScheduleItemType = "class"
	ScheduleItemConsultation ScheduleItemType = "consultation"
	ScheduleItemAdmin        ScheduleItemType = "admin"
)

// ScheduleItem элемент расписания преподавателя на день
type ScheduleItem struct {
	ID       string
	Start    int // минуты от полуночи, для сортировки
	Time     string
	Title    string
	Location string
	Code     string
	Type     ScheduleItemType
}
