package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest фильтр списка заявок для администратора
type ListReservationsRequest struct {
	Date   *time.Time // дата (без времени)
	Room   *string
	Status *string // pending | approved | declined
}

// UpdateStatusRequest запрос на решение по заявке
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64     `json:"id"`
	RoomName      string    `json:"roomName"`
	RoomType      string    `json:"roomType"`
	Date          string    `json:"date"`     // "3/3/2025"
	DateISO       string    `json:"dateIso"`  // "2025-03-03"
	TimeSlot      string    `json:"timeSlot"` // "9:00 AM - 10:00 AM"
	Notes         string    `json:"notes,omitempty"`
	RequesterName string    `json:"requesterName"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            r.ID,
		RoomName:      r.RoomName,
		RoomType:      string(r.RoomType),
		Date:          r.DateLabel,
		DateISO:       r.Date.Format(domain.DateFormat),
		TimeSlot:      r.TimeSlot,
		Notes:         r.Notes,
		RequesterName: r.RequesterName,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}

	for _, r := range list {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
