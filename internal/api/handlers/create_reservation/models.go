package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ClassroomService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Room      string `json:"room"`
	Date      string `json:"date"`      // "2025-03-03"
	StartTime string `json:"startTime"` // "9:00 AM"
	EndTime   string `json:"endTime"`   // "10:30 AM"
	Notes     string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(requester string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RequesterName: requester,
		Room:          r.Room,
		Date:          date,
		Start:         r.StartTime,
		End:           r.EndTime,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(resp.Reservation)
}
