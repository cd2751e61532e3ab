package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// Request модель запроса на бронирование аудитории
type Request struct {
	RequesterName string    // Имя из заголовка X-User-Name
	Room          string    // Название аудитории
	Date          time.Time // Дата (без времени)
	Start         string    // "9:00 AM"
	End           string    // "10:30 AM"
	Notes         string    // Комментарий (опционально)
}

// Response созданная заявка
type Response struct {
	Reservation *domain.Reservation
}
