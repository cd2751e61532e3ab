package get_end_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type snapshotsStub struct {
	schedules    []*domain.ScheduleDocument
	reservations []*domain.Reservation
}

func (s *snapshotsStub) Schedules(ctx context.Context) ([]*domain.ScheduleDocument, error) {
	return s.schedules, nil
}

func (s *snapshotsStub) ReservationsForDate(ctx context.Context, dateLabel string) ([]*domain.Reservation, error) {
	return s.reservations, nil
}

var monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func newUseCase() *UseCase {
	s := &snapshotsStub{
		schedules: []*domain.ScheduleDocument{{
			ID: "BSCS",
			Entries: []domain.ScheduleEntry{
				{Weekday: "Monday", Room: "Room 301", StartTime: "10:00AM", EndTime: "10:30AM"},
			},
		}},
		reservations: []*domain.Reservation{
			{RoomName: "Room 301", TimeSlot: "8:00 AM - 8:30 AM", Status: domain.StatusApproved},
			{RoomName: "Room 301", TimeSlot: "9:00 AM - 9:30 AM", Status: domain.StatusDeclined},
		},
	}
	uc := NewUseCase(s, 7, logger.NewNop())
	uc.timeProvider = fixedTime{now: monday}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Room: "Room 301", Start: "8:30am"})

	require.NoError(t, err)
	assert.Equal(t, "8:30 AM", resp.Start)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM", "10:00 AM"}, resp.EndTimes)
	assert.NotContains(t, resp.StartTimes, "8:00 AM")
	assert.NotContains(t, resp.StartTimes, "10:00 AM")
	assert.Contains(t, resp.StartTimes, "9:00 AM")
}

func TestUseCase_Execute_StartNotFree(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Room: "Room 301", Start: "10:00 AM"})

	require.NoError(t, err)
	assert.Empty(t, resp.EndTimes)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{Date: monday, Room: "Room 999", Start: "9:00 AM"})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, Room: "Room 301", Start: "nine"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, Start: "9:00 AM"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday.AddDate(0, 0, 30), Room: "Room 301", Start: "9:00 AM"})
	assert.ErrorIs(t, err, ErrDateOutsideWindow)
}
