package models

import (
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// NotificationResponse уведомление пользователя
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Time      string    `json:"time"` // "2 hours ago"
	Timestamp time.Time `json:"timestamp"`
	Status    *string   `json:"status,omitempty"`
	Source    string    `json:"source"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"` // решённые заявки и замены
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n domain.Notification, timeAgo string) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Time:      timeAgo,
		Timestamp: n.Timestamp,
		Source:    string(n.Source),
	}
	if n.Status != nil {
		s := string(*n.Status)
		resp.Status = &s
	}
	return resp
}
