package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ClassroomService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
)

type repoStub struct {
	items     map[int64]*domain.Reservation
	listErr   error
	updateErr error
	filter    domain.ReservationsFilter
}

func (r *repoStub) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *repoStub) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	r.filter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Reservation
	for _, res := range r.items {
		if filter.RequesterName == nil || res.RequesterName == *filter.RequesterName {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *repoStub) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.items[id].Status = status
	return nil
}

type txStub struct{ calls int }

func (t *txStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func newService() (*Service, *repoStub, *txStub) {
	repo := &repoStub{items: map[int64]*domain.Reservation{
		1: {ID: 1, RoomName: "Room 301", DateLabel: "3/3/2025", TimeSlot: "9:00 AM - 10:00 AM", RequesterName: "ana", Status: domain.StatusPending},
		2: {ID: 2, RoomName: "CS Lab 1", DateLabel: "3/4/2025", TimeSlot: "1:00 PM - 2:00 PM", RequesterName: "ben", Status: domain.StatusDeclined},
	}}
	tx := &txStub{}
	return NewService(repo, tx, logger.NewNop()), repo, tx
}

func TestService_GetByID(t *testing.T) {
	s, _, _ := newService()

	resp, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Room 301", resp.RoomName)
	assert.Equal(t, "3/3/2025", resp.Date)
	assert.Equal(t, "pending", resp.Status)

	_, err = s.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_GetUserReservations(t *testing.T) {
	s, repo, _ := newService()

	resp, err := s.GetUserReservations(context.Background(), " ana ")
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "ana", *repo.filter.RequesterName)

	_, err = s.GetUserReservations(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("db down")
	_, err = s.GetUserReservations(context.Background(), "ana")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_UpdateStatus(t *testing.T) {
	s, repo, tx := newService()

	resp, err := s.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, domain.StatusApproved, repo.items[1].Status)
	assert.Equal(t, 1, tx.calls)

	// решение уже принято
	_, err = s.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "declined"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	s, repo, _ := newService()

	_, err := s.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = s.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrReservationNotFound)

	repo.updateErr = errors.New("deadlock")
	_, err = s.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List(t *testing.T) {
	s, repo, _ := newService()
	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	room := " CS Lab 1 "
	status := "pending"

	_, err := s.List(context.Background(), &models.ListReservationsRequest{Date: &date, Room: &room, Status: &status})

	require.NoError(t, err)
	require.NotNil(t, repo.filter.DateLabel)
	assert.Equal(t, "3/4/2025", *repo.filter.DateLabel)
	require.NotNil(t, repo.filter.RoomName)
	assert.Equal(t, "CS Lab 1", *repo.filter.RoomName)
	assert.Equal(t, []domain.ReservationStatus{domain.StatusPending}, repo.filter.Statuses)

	bad := "cancelled"
	_, err = s.List(context.Background(), &models.ListReservationsRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	repo.listErr = errors.New("db down")
	_, err = s.List(context.Background(), &models.ListReservationsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
