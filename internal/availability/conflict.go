package availability

import "github.com/m04kA/SMC-ClassroomService/internal/domain"

// HasConflict проверяет, есть ли уже заявка pending/approved на ту же аудиторию
// и точно тот же слот. reservations должны относиться к одной дате.
// Проверка не атомарна со вставкой новой заявки
func HasConflict(room, timeSlot string, reservations []*domain.Reservation) bool {
	for _, r := range reservations {
		if r == nil {
			continue
		}
		if r.RoomName == room && r.TimeSlot == timeSlot && r.IsBlocking() {
			return true
		}
	}
	return false
}
