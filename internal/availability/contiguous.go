package availability

import (
	"sort"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/pkg/types"
)

// StartTimes возвращает подписи начала свободных слотов по возрастанию
func StartTimes(freeSlots []domain.TimeSlot) []string {
	sorted := sortedSlots(freeSlots)
	out := make([]string, 0, len(sorted))
	seen := make(map[int]struct{}, len(sorted))
	for _, s := range sorted {
		if _, ok := seen[s.Start]; ok {
			continue
		}
		seen[s.Start] = struct{}{}
		out = append(out, types.FormatMinutes(s.Start))
	}
	return out
}

// ContiguousEndTimes возвращает допустимые времена окончания для брони,
// начинающейся в start: концы слотов непрерывного блока, идущего от start.
// Соседние слоты должны стыковаться точно (начало = конец предыдущего).
// Если ни один слот не начинается в start, результат пустой
func ContiguousEndTimes(start int, freeSlots []domain.TimeSlot) []string {
	sorted := sortedSlots(freeSlots)

	idx := -1
	for i, s := range sorted {
		if s.Start == start {
			idx = i
			break
		}
	}
	if idx < 0 {
		return []string{}
	}

	ends := make([]string, 0, len(sorted)-idx)
	seen := make(map[int]struct{})
	prevEnd := sorted[idx].Start
	for _, s := range sorted[idx:] {
		if s.Start != prevEnd {
			break
		}
		if _, ok := seen[s.End]; !ok {
			seen[s.End] = struct{}{}
			ends = append(ends, types.FormatMinutes(s.End))
		}
		prevEnd = s.End
	}

	return ends
}

func sortedSlots(slots []domain.TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(slots))
	copy(out, slots)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
