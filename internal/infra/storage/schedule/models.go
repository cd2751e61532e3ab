package schedule

// entryRecord запись расписания в JSONB колонке entries
type entryRecord struct {
	Room              string `json:"room"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Subject           string `json:"subject"`
	SectionName       string `json:"sectionName"`
	SubstituteTeacher string `json:"substituteTeacher"`
}
