package update_reservation_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
)

type serviceStub struct {
	id  int64
	err error
}

func (s *serviceStub) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.id = id
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReservationResponse{ID: id, Status: req.Status}, nil
}

func patch(svc *serviceStub, id, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/reservations/{reservationId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/reservations/"+id+"/status", strings.NewReader(payload)))
	return rec
}

func TestHandler(t *testing.T) {
	svc := &serviceStub{}
	rec := patch(svc, "5", `{"status":"approved"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.id)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)

	assert.Equal(t, http.StatusBadRequest, patch(&serviceStub{}, "abc", `{"status":"approved"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(&serviceStub{}, "5", `nope`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(&serviceStub{err: reservations.ErrInvalidStatus}, "5", `{"status":"x"}`).Code)
	assert.Equal(t, http.StatusNotFound, patch(&serviceStub{err: reservations.ErrReservationNotFound}, "5", `{"status":"approved"}`).Code)
	assert.Equal(t, http.StatusConflict, patch(&serviceStub{err: reservations.ErrInvalidTransition}, "5", `{"status":"declined"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, patch(&serviceStub{err: reservations.ErrInternal}, "5", `{"status":"approved"}`).Code)
}
