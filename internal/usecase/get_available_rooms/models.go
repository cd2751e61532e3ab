package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// Request модель запроса на получение свободных аудиторий
type Request struct {
	Date     time.Time       // Дата (без времени)
	RoomType domain.RoomType // lecture | laboratory | all
}

// Response модель ответа со списком аудиторий
type Response struct {
	Date      time.Time
	DateLabel string // M/D/YYYY
	Weekday   string // Mon, Tue, ...
	Rooms     []domain.DerivedRoom
}
