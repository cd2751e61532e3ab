package domain

import "time"

// ReservationStatus represents the status of a classroom reservation
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusApproved ReservationStatus = "approved"
	StatusDeclined ReservationStatus = "declined"
)

// IsValid returns true for known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// Reservation represents a one-off classroom booking request
type Reservation struct {
	ID            int64
	RoomName      string
	RoomType      RoomType
	DateLabel     string    // "M/D/YYYY"
	Date          time.Time // та же дата, для выборок по диапазону
	TimeSlot      string    // "<start> - <end>"
	Notes         string
	RequesterName string
	Status        ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the reservation occupies its room
func (r *Reservation) IsBlocking() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// IsApproved returns true if the reservation was approved
func (r *Reservation) IsApproved() bool {
	return r.Status == StatusApproved
}

// CanTransitionTo returns true if the status change is allowed.
// Решение по заявке принимается один раз: только из pending.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	if r.Status != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusDeclined
}

// ReservationsFilter фильтр выборки бронирований
type ReservationsFilter struct {
	DateLabel     *string             // Дата в формате M/D/YYYY (опционально)
	RoomName      *string             // Аудитория (опционально)
	RequesterName *string             // Автор заявки (опционально)
	Statuses      []ReservationStatus // Пустой список - все статусы
}
