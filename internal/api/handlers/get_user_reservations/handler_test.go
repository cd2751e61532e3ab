package get_user_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClassroomService/internal/api/middleware"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
)

type serviceStub struct {
	user string
	err  error
}

func (s *serviceStub) GetUserReservations(ctx context.Context, requester string) (*models.ReservationListResponse, error) {
	s.user = requester
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{{ID: 1, RequesterName: requester}}}, nil
}

func TestHandler(t *testing.T) {
	svc := &serviceStub{}
	req := httptest.NewRequest(http.MethodGet, "/users/me/reservations", nil)
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, req.WithContext(middleware.WithUserName(req.Context(), "ana")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana", svc.user)
	assert.Contains(t, rec.Body.String(), `"requesterName":"ana"`)

	rec = httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/users/me/reservations", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&serviceStub{err: errors.New("db")}, logger.NewNop()).Handle(rec, req.WithContext(middleware.WithUserName(req.Context(), "ana")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
