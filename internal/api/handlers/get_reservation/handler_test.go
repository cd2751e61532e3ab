package get_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
)

type serviceStub struct{ err error }

func (s *serviceStub) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationResponse{ID: id, RoomName: "Room 301"}, nil
}

func get(svc *serviceStub, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/reservations/{reservationId}", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/"+id, nil))
	return rec
}

func TestHandler(t *testing.T) {
	rec := get(&serviceStub{}, "3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"roomName":"Room 301"`)

	assert.Equal(t, http.StatusBadRequest, get(&serviceStub{}, "x").Code)
	assert.Equal(t, http.StatusNotFound, get(&serviceStub{err: reservations.ErrReservationNotFound}, "3").Code)
	assert.Equal(t, http.StatusInternalServerError, get(&serviceStub{err: reservations.ErrInternal}, "3").Code)
}
