package availability

import (
	"sync"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/pkg/types"
)

const slotMinutes = 30

// workingRanges рабочие промежутки дня, обеденный час 12:00-13:00 исключён
var workingRanges = []domain.Interval{
	{Start: 7 * 60, End: 12 * 60},
	{Start: 13 * 60, End: 17 * 60},
}

var fixedSlots = sync.OnceValue(func() []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, 18)
	for _, r := range workingRanges {
		for start := r.Start; start+slotMinutes <= r.End; start += slotMinutes {
			slots = append(slots, newSlot(start, start+slotMinutes))
		}
	}
	return slots
})

// TimeSlots возвращает 18 фиксированных получасовых слотов дня.
// Возвращается копия, вызывающий может её менять
func TimeSlots() []domain.TimeSlot {
	src := fixedSlots()
	out := make([]domain.TimeSlot, len(src))
	copy(out, src)
	return out
}

// SlotLabel строит подпись "9:00 AM - 9:30 AM"
func SlotLabel(start, end int) string {
	return types.FormatMinutes(start) + domain.TimeSlotSeparator + types.FormatMinutes(end)
}

func newSlot(start, end int) domain.TimeSlot {
	return domain.TimeSlot{Start: start, End: end, Label: SlotLabel(start, end)}
}
