package models

import "github.com/m04kA/SMC-ClassroomService/internal/domain"

// ScheduleItemResponse элемент расписания
type ScheduleItemResponse struct {
	ID       string `json:"id"`
	Time     string `json:"time"` // "8:30AM - 10:00AM"
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Code     string `json:"code,omitempty"`
	Type     string `json:"type"` // class | consultation | admin
}

// DayScheduleResponse расписание на день недели
type DayScheduleResponse struct {
	Day   string                 `json:"day"` // Sun..Sat
	Items []ScheduleItemResponse `json:"items"`
}

// WeeklyScheduleResponse недельное расписание преподавателя
type WeeklyScheduleResponse struct {
	Professor string                `json:"professor"`
	Days      []DayScheduleResponse `json:"days"`
}

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(it domain.ScheduleItem) ScheduleItemResponse {
	return ScheduleItemResponse{
		ID:       it.ID,
		Time:     it.Time,
		Title:    it.Title,
		Location: it.Location,
		Code:     it.Code,
		Type:     string(it.Type),
	}
}
