package availability

import (
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// InferRoomType определяет тип аудитории по имени: "lab" в любом регистре - лаборатория
func InferRoomType(name string) domain.RoomType {
	if strings.Contains(strings.ToLower(name), "lab") {
		return domain.RoomTypeLaboratory
	}
	return domain.RoomTypeLecture
}

// DeriveRooms вычисляет свободные слоты всех известных аудиторий на дату.
//
// В список попадают все аудитории из любых записей расписаний (независимо от дня)
// и из бронирований на эту дату. Занятость считается по занятиям этого дня недели
// и только по одобренным бронированиям: заявки pending не скрывают слоты в выдаче,
// но учитываются проверкой HasConflict при создании заявки.
// Результат отсортирован по имени, аудитории без свободных слотов остаются.
func DeriveRooms(date time.Time, schedules []*domain.ScheduleDocument, reservations []*domain.Reservation) []domain.DerivedRoom {
	weekday := WeekdayOf(date)
	names := collectRoomNames(schedules, reservations)

	rooms := make([]domain.DerivedRoom, 0, len(names))
	for _, name := range names {
		busy := occupancy(name, weekday, schedules, reservations, (*domain.Reservation).IsApproved)
		rooms = append(rooms, domain.DerivedRoom{
			Name:      name,
			Type:      InferRoomType(name),
			FreeSlots: FreeSlots(busy),
		})
	}

	return rooms
}

// ListingRooms то же, что DeriveRooms, но без аудиторий, у которых нет свободных слотов
func ListingRooms(date time.Time, schedules []*domain.ScheduleDocument, reservations []*domain.Reservation) []domain.DerivedRoom {
	all := DeriveRooms(date, schedules, reservations)
	out := all[:0]
	for _, r := range all {
		if r.HasFreeSlots() {
			out = append(out, r)
		}
	}
	return out
}

// FilterByType оставляет аудитории нужного типа, RoomTypeAll пропускает всё
func FilterByType(rooms []domain.DerivedRoom, roomType domain.RoomType) []domain.DerivedRoom {
	if roomType == domain.RoomTypeAll || roomType == "" {
		return rooms
	}
	out := make([]domain.DerivedRoom, 0, len(rooms))
	for _, r := range rooms {
		if r.Type == roomType {
			out = append(out, r)
		}
	}
	return out
}

// FindRoom ищет аудиторию по точному имени
func FindRoom(rooms []domain.DerivedRoom, name string) (domain.DerivedRoom, bool) {
	for _, r := range rooms {
		if r.Name == name {
			return r, true
		}
	}
	return domain.DerivedRoom{}, false
}

func collectRoomNames(schedules []*domain.ScheduleDocument, reservations []*domain.Reservation) []string {
	seen := make(map[string]struct{})

	for _, doc := range schedules {
		if doc == nil {
			continue
		}
		for _, e := range doc.Entries {
			// записи без аудитории пропускаются
			if e.Room != "" {
				seen[e.Room] = struct{}{}
			}
		}
	}
	for _, r := range reservations {
		if r != nil && r.RoomName != "" && r.IsBlocking() {
			seen[r.RoomName] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
	return names
}
