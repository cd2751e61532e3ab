package availability

import (
	"strings"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/pkg/types"
)

// RangesOverlap проверяет пересечение полуоткрытых интервалов,
// касание границ пересечением не считается
func RangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return max(aStart, bStart) < min(aEnd, bEnd)
}

// ParseTimeSlot разбирает строку "9:00 AM - 10:00 AM" в интервал.
// Время читается в историческом режиме (нераспознанное = полночь);
// строка без разделителя не считается интервалом
func ParseTimeSlot(slot string) (domain.Interval, bool) {
	start, end, ok := strings.Cut(slot, domain.TimeSlotSeparator)
	if !ok {
		return domain.Interval{}, false
	}
	return domain.Interval{
		Start: types.MinutesOrMidnight(start),
		End:   types.MinutesOrMidnight(end),
	}, true
}

// ComputeOccupancy собирает занятые интервалы аудитории на день недели:
// занятия из расписаний этого дня и бронирования pending/approved.
// reservations должны быть уже отфильтрованы по дате.
// Интервалы не сортируются и не объединяются
func ComputeOccupancy(room, weekdayShort string, schedules []*domain.ScheduleDocument, reservations []*domain.Reservation) []domain.Interval {
	return occupancy(room, weekdayShort, schedules, reservations, (*domain.Reservation).IsBlocking)
}

func occupancy(
	room, weekdayShort string,
	schedules []*domain.ScheduleDocument,
	reservations []*domain.Reservation,
	counts func(*domain.Reservation) bool,
) []domain.Interval {
	var out []domain.Interval

	for _, doc := range schedules {
		if doc == nil {
			continue
		}
		for _, e := range doc.Entries {
			if e.Room != room || ShortWeekday(e.Weekday) != weekdayShort {
				continue
			}
			out = append(out, domain.Interval{
				Start: types.MinutesOrMidnight(e.StartTime),
				End:   types.MinutesOrMidnight(e.EndTime),
			})
		}
	}

	for _, r := range reservations {
		if r == nil || r.RoomName != room || !counts(r) {
			continue
		}
		iv, ok := ParseTimeSlot(r.TimeSlot)
		if !ok {
			continue
		}
		out = append(out, iv)
	}

	return out
}

// FreeSlots возвращает фиксированные слоты, не пересекающиеся ни с одним интервалом
func FreeSlots(busy []domain.Interval) []domain.TimeSlot {
	free := make([]domain.TimeSlot, 0, len(fixedSlots()))
	for _, s := range fixedSlots() {
		if !overlapsAny(s, busy) {
			free = append(free, s)
		}
	}
	return free
}

func overlapsAny(s domain.TimeSlot, busy []domain.Interval) bool {
	for _, iv := range busy {
		if RangesOverlap(s.Start, s.End, iv.Start, iv.End) {
			return true
		}
	}
	return false
}
