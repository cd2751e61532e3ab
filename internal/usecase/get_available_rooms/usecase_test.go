package get_available_rooms

import (
	"context"
	"errors"
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
	schedErr     error
	resErr       error
	askedLabel   string
}

func (s *snapshotsStub) Schedules(ctx context.Context) ([]*domain.ScheduleDocument, error) {
	return s.schedules, s.schedErr
}

func (s *snapshotsStub) ReservationsForDate(ctx context.Context, dateLabel string) ([]*domain.Reservation, error) {
	s.askedLabel = dateLabel
	return s.reservations, s.resErr
}

// 3 марта 2025 - понедельник
var today = time.Date(2025, time.March, 3, 10, 15, 0, 0, time.UTC)

func newUseCase(s *snapshotsStub) *UseCase {
	uc := NewUseCase(s, 7, logger.NewNop())
	uc.timeProvider = fixedTime{now: today}
	return uc
}

func fixtures() *snapshotsStub {
	return &snapshotsStub{
		schedules: []*domain.ScheduleDocument{{
			ID: "BSCS",
			Entries: []domain.ScheduleEntry{
				{Key: "Monday_7:00AM", Weekday: "Monday", Room: "Room 301", StartTime: "7:00AM", EndTime: "12:00PM"},
				{Key: "Monday_1:00PM", Weekday: "Monday", Room: "Room 301", StartTime: "1:00PM", EndTime: "5:00PM"},
				{Key: "Monday_9:00AM", Weekday: "Monday", Room: "CS Lab 1", StartTime: "9:00AM", EndTime: "10:00AM"},
				{Key: "Tuesday_9:00AM", Weekday: "Tuesday", Room: "Room 205", StartTime: "9:00AM", EndTime: "10:00AM"},
			},
		}},
		reservations: []*domain.Reservation{
			{RoomName: "Room 205", TimeSlot: "7:00 AM - 8:00 AM", Status: domain.StatusApproved},
			{RoomName: "Room 205", TimeSlot: "8:00 AM - 8:30 AM", Status: domain.StatusPending},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	s := fixtures()
	uc := newUseCase(s)

	resp, err := uc.Execute(context.Background(), &Request{Date: today, RoomType: domain.RoomTypeAll})

	require.NoError(t, err)
	assert.Equal(t, "3/3/2025", s.askedLabel)
	assert.Equal(t, "3/3/2025", resp.DateLabel)
	assert.Equal(t, "Mon", resp.Weekday)

	// Room 301 занята весь день и не попадает в выдачу
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, "CS Lab 1", resp.Rooms[0].Name)
	assert.Len(t, resp.Rooms[0].FreeSlots, 16)
	assert.Equal(t, "Room 205", resp.Rooms[1].Name)
	// одобренная заявка занимает 7:00-8:00, pending слоты не скрывает
	assert.Len(t, resp.Rooms[1].FreeSlots, 16)
}

func TestUseCase_Execute_FilterByType(t *testing.T) {
	uc := newUseCase(fixtures())

	resp, err := uc.Execute(context.Background(), &Request{Date: today, RoomType: domain.RoomTypeLaboratory})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, domain.RoomTypeLaboratory, resp.Rooms[0].Type)

	resp, err = uc.Execute(context.Background(), &Request{Date: today})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newUseCase(fixtures())

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing date", &Request{}, ErrInvalidInput},
		{"unknown type", &Request{Date: today, RoomType: "gym"}, ErrInvalidInput},
		{"yesterday", &Request{Date: today.AddDate(0, 0, -1)}, ErrDateOutsideWindow},
		{"beyond window", &Request{Date: today.AddDate(0, 0, 8)}, ErrDateOutsideWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := uc.Execute(context.Background(), &Request{Date: today.AddDate(0, 0, 7)})
	assert.NoError(t, err, "last day of the window is allowed")
}

func TestUseCase_Execute_StorageErrors(t *testing.T) {
	s := fixtures()
	s.schedErr = errors.New("db down")
	_, err := newUseCase(s).Execute(context.Background(), &Request{Date: today})
	assert.ErrorIs(t, err, ErrInternal)

	s = fixtures()
	s.resErr = errors.New("db down")
	_, err = newUseCase(s).Execute(context.Background(), &Request{Date: today})
	assert.ErrorIs(t, err, ErrInternal)
}
