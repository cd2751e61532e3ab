package list_reservations

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
)

// ToServiceRequest собирает фильтр из query параметров
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if room := query.Get("room"); room != "" {
		req.Room = &room
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
