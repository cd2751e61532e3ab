package domain

import "time"

// NotificationType визуальный тип уведомления
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// NotificationSource источник уведомления
type NotificationSource string

const (
	SourceReservation  NotificationSource = "reservation"
	SourceSubstitution NotificationSource = "substitution"
)

// Notification уведомление пользователя, вычисляется при запросе
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Status    *ReservationStatus
	Source    NotificationSource
}
