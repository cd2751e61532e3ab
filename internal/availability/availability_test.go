package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// 3 марта 2025 - понедельник
var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func scheduleDoc(entries ...domain.ScheduleEntry) *domain.ScheduleDocument {
	return &domain.ScheduleDocument{ID: "doc", Program: "BSCS", Entries: entries}
}

func entry(weekday, room, start, end string) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		Key:       weekday + "_" + start,
		Weekday:   weekday,
		Room:      room,
		StartTime: start,
		EndTime:   end,
	}
}

func reservation(room, slot string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		RoomName:  room,
		TimeSlot:  slot,
		DateLabel: monday.Format(domain.DateLabelFormat),
		Status:    status,
	}
}

func labels(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Label)
	}
	return out
}

func TestRangesOverlap(t *testing.T) {
	assert.False(t, RangesOverlap(60, 90, 90, 120))
	assert.True(t, RangesOverlap(60, 91, 90, 120))

	cases := [][4]int{
		{0, 30, 30, 60},
		{0, 60, 30, 90},
		{420, 450, 400, 500},
		{600, 660, 540, 560},
	}
	for _, c := range cases {
		assert.Equal(t,
			RangesOverlap(c[0], c[1], c[2], c[3]),
			RangesOverlap(c[2], c[3], c[0], c[1]),
			"overlap must be symmetric for %v", c)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 18)

	morning, afternoon := 0, 0
	for _, s := range slots {
		assert.Equal(t, 30, s.Duration())
		if s.End <= 12*60 {
			morning++
		} else {
			afternoon++
			assert.GreaterOrEqual(t, s.Start, 13*60)
		}
	}
	assert.Equal(t, 10, morning)
	assert.Equal(t, 8, afternoon)

	assert.Equal(t, "7:00 AM - 7:30 AM", slots[0].Label)
	assert.Equal(t, "11:30 AM - 12:00 PM", slots[9].Label)
	assert.Equal(t, "1:00 PM - 1:30 PM", slots[10].Label)
	assert.Equal(t, "4:30 PM - 5:00 PM", slots[17].Label)

	// копия не влияет на кэш
	slots[0].Label = "changed"
	assert.Equal(t, "7:00 AM - 7:30 AM", TimeSlots()[0].Label)
}

func TestShortWeekday(t *testing.T) {
	assert.Equal(t, "Mon", ShortWeekday("Monday"))
	assert.Equal(t, "Sun", ShortWeekday("Sunday"))
	assert.Equal(t, "Thu", ShortWeekday("Thursday"))
	assert.Equal(t, "Thu", ShortWeekday("Thurs"))
	assert.Equal(t, "Mo", ShortWeekday("Mo"))
	assert.Equal(t, "", ShortWeekday(""))

	assert.Equal(t, "Mon", WeekdayOf(monday))
	assert.Equal(t, "Sun", WeekdayOf(monday.AddDate(0, 0, -1)))
}

func TestParseTimeSlot(t *testing.T) {
	iv, ok := ParseTimeSlot("9:00 AM - 10:30 AM")
	require.True(t, ok)
	assert.Equal(t, domain.Interval{Start: 540, End: 630}, iv)

	iv, ok = ParseTimeSlot("garbage - 1:00 PM")
	require.True(t, ok)
	assert.Equal(t, domain.Interval{Start: 0, End: 780}, iv)

	_, ok = ParseTimeSlot("9:00 AM")
	assert.False(t, ok)
}

func TestComputeOccupancy(t *testing.T) {
	schedules := []*domain.ScheduleDocument{
		scheduleDoc(
			entry("Monday", "R101", "9:00AM", "10:00AM"),
			entry("Tuesday", "R101", "1:00PM", "2:00PM"),
			entry("Monday", "R202", "7:00AM", "8:00AM"),
		),
		nil,
	}
	reservations := []*domain.Reservation{
		reservation("R101", "1:00 PM - 1:30 PM", domain.StatusPending),
		reservation("R101", "2:00 PM - 3:00 PM", domain.StatusApproved),
		reservation("R101", "3:00 PM - 4:00 PM", domain.StatusDeclined),
		reservation("R202", "8:00 AM - 9:00 AM", domain.StatusApproved),
	}

	got := ComputeOccupancy("R101", "Mon", schedules, reservations)

	assert.ElementsMatch(t, []domain.Interval{
		{Start: 540, End: 600},
		{Start: 780, End: 810},
		{Start: 840, End: 900},
	}, got)
}

func TestComputeOccupancy_DeclinedNeverCounts(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation("R101", "9:00 AM - 9:30 AM", domain.StatusDeclined),
		reservation("R101", "9:30 AM - 10:00 AM", domain.StatusDeclined),
	}

	assert.Empty(t, ComputeOccupancy("R101", "Mon", nil, reservations))

	rooms := DeriveRooms(monday, nil, reservations)
	assert.Empty(t, rooms)

	schedules := []*domain.ScheduleDocument{scheduleDoc(entry("Friday", "R101", "7:00AM", "8:00AM"))}
	rooms = DeriveRooms(monday, schedules, reservations)
	require.Len(t, rooms, 1)
	assert.Len(t, rooms[0].FreeSlots, 18)
}

func TestDeriveRooms_EmptyRoomHasAllSlots(t *testing.T) {
	// аудитория занята только во вторник, в понедельник свободна полностью
	schedules := []*domain.ScheduleDocument{scheduleDoc(entry("Tuesday", "R101", "9:00AM", "10:00AM"))}

	rooms := DeriveRooms(monday, schedules, nil)

	require.Len(t, rooms, 1)
	assert.Equal(t, "R101", rooms[0].Name)
	assert.Equal(t, TimeSlots(), rooms[0].FreeSlots)
}

func TestDeriveRooms_ScheduledHourExcluded(t *testing.T) {
	schedules := []*domain.ScheduleDocument{scheduleDoc(entry("Monday", "R101", "9:00 AM", "10:00 AM"))}

	rooms := DeriveRooms(monday, schedules, nil)

	require.Len(t, rooms, 1)
	free := labels(rooms[0].FreeSlots)
	assert.Len(t, free, 16)
	assert.NotContains(t, free, "9:00 AM - 9:30 AM")
	assert.NotContains(t, free, "9:30 AM - 10:00 AM")
	assert.Contains(t, free, "8:30 AM - 9:00 AM")
	assert.Contains(t, free, "10:00 AM - 10:30 AM")
}

func TestDeriveRooms_PendingDoesNotHideSlots(t *testing.T) {
	reservations := []*domain.Reservation{
		reservation("R101", "9:00 AM - 9:30 AM", domain.StatusPending),
		reservation("R101", "10:00 AM - 10:30 AM", domain.StatusApproved),
	}

	rooms := DeriveRooms(monday, nil, reservations)

	require.Len(t, rooms, 1)
	free := labels(rooms[0].FreeSlots)
	assert.Contains(t, free, "9:00 AM - 9:30 AM")
	assert.NotContains(t, free, "10:00 AM - 10:30 AM")

	// а проверка при создании заявки pending учитывает
	assert.True(t, HasConflict("R101", "9:00 AM - 9:30 AM", reservations))
}

func TestDeriveRooms_SortedAndTyped(t *testing.T) {
	schedules := []*domain.ScheduleDocument{
		scheduleDoc(
			entry("Monday", "room 3", "7:00AM", "8:00AM"),
			entry("Monday", "Comp Lab 1", "7:00AM", "8:00AM"),
			entry("Monday", "", "7:00AM", "8:00AM"),
			entry("Wednesday", "Room 2", "7:00AM", "8:00AM"),
		),
	}

	rooms := DeriveRooms(monday, schedules, nil)

	require.Len(t, rooms, 3)
	assert.Equal(t, "Comp Lab 1", rooms[0].Name)
	assert.Equal(t, domain.RoomTypeLaboratory, rooms[0].Type)
	assert.Equal(t, "Room 2", rooms[1].Name)
	assert.Equal(t, "room 3", rooms[2].Name)
	assert.Equal(t, domain.RoomTypeLecture, rooms[2].Type)

	assert.Len(t, FilterByType(rooms, domain.RoomTypeLaboratory), 1)
	assert.Len(t, FilterByType(rooms, domain.RoomTypeLecture), 2)
	assert.Len(t, FilterByType(rooms, domain.RoomTypeAll), 3)
}

func TestListingRooms_DropsFullyBooked(t *testing.T) {
	schedules := []*domain.ScheduleDocument{
		scheduleDoc(
			entry("Monday", "R101", "7:00 AM", "12:00 PM"),
			entry("Monday", "R101", "1:00 PM", "5:00 PM"),
			entry("Monday", "R102", "7:00 AM", "8:00 AM"),
		),
	}

	all := DeriveRooms(monday, schedules, nil)
	listed := ListingRooms(monday, schedules, nil)

	assert.Len(t, all, 2)
	require.Len(t, listed, 1)
	assert.Equal(t, "R102", listed[0].Name)

	_, ok := FindRoom(listed, "R101")
	assert.False(t, ok)
}

func TestInferRoomType(t *testing.T) {
	assert.Equal(t, domain.RoomTypeLaboratory, InferRoomType("CS LAB 2"))
	assert.Equal(t, domain.RoomTypeLaboratory, InferRoomType("Collaboration Hall"))
	assert.Equal(t, domain.RoomTypeLecture, InferRoomType("Room 301"))
}

func TestContiguousEndTimes(t *testing.T) {
	free := []domain.TimeSlot{
		newSlot(630, 660),
		newSlot(540, 570),
		newSlot(570, 600),
	}

	t.Run("stops at gap", func(t *testing.T) {
		assert.Equal(t, []string{"9:30 AM", "10:00 AM"}, ContiguousEndTimes(540, free))
	})

	t.Run("start in the middle", func(t *testing.T) {
		assert.Equal(t, []string{"10:00 AM"}, ContiguousEndTimes(570, free))
	})

	t.Run("unknown start", func(t *testing.T) {
		assert.Empty(t, ContiguousEndTimes(600, free))
	})

	t.Run("lunch break is a gap", func(t *testing.T) {
		ends := ContiguousEndTimes(11*60, TimeSlots())
		assert.Equal(t, []string{"11:30 AM", "12:00 PM"}, ends)
	})

	t.Run("start times sorted", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "9:30 AM", "10:30 AM"}, StartTimes(free))
	})
}

func TestHasConflict(t *testing.T) {
	first := reservation("R101", "9:00 AM - 9:30 AM", domain.StatusPending)
	existing := []*domain.Reservation{first}

	assert.True(t, HasConflict("R101", "9:00 AM - 9:30 AM", existing))
	assert.False(t, HasConflict("R101", "9:00 AM - 10:00 AM", existing), "only exact slot matches")
	assert.False(t, HasConflict("R102", "9:00 AM - 9:30 AM", existing))

	first.Status = domain.StatusDeclined
	assert.False(t, HasConflict("R101", "9:00 AM - 9:30 AM", existing))

	first.Status = domain.StatusApproved
	assert.True(t, HasConflict("R101", "9:00 AM - 9:30 AM", existing))
}
