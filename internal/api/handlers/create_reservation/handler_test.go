package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomService/internal/api/middleware"
	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ClassroomService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
)

type useCaseStub struct {
	got *createReservation.Request
	err error
}

func (u *useCaseStub) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return &createReservation.Response{Reservation: &domain.Reservation{
		ID:            11,
		RoomName:      req.Room,
		DateLabel:     req.Date.Format(domain.DateLabelFormat),
		Date:          req.Date,
		TimeSlot:      req.Start + domain.TimeSlotSeparator + req.End,
		RequesterName: req.RequesterName,
		Status:        domain.StatusPending,
	}}, nil
}

const body = `{"room":"Room 301","date":"2025-03-03","startTime":"9:00 AM","endTime":"10:30 AM"}`

func serve(t *testing.T, uc *useCaseStub, user, payload string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(payload))
	if user != "" {
		req.Header.Set(middleware.UserNameHeader, user)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &useCaseStub{}

	rec := serve(t, uc, "ana", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ana", uc.got.RequesterName)
	assert.Equal(t, "9:00 AM", uc.got.Start)

	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "3/3/2025", resp.Date)
	assert.Equal(t, "9:00 AM - 10:30 AM", resp.TimeSlot)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_Errors(t *testing.T) {
	cases := []struct {
		name    string
		user    string
		payload string
		err     error
		status  int
		message string
	}{
		{"missing user", "", body, nil, http.StatusUnauthorized, ""},
		{"bad body", "ana", `{"room":`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"bad date", "ana", `{"room":"Room 301","date":"03/03/2025"}`, nil, http.StatusBadRequest, msgInvalidDate},
		{"invalid input", "ana", body, fmt.Errorf("%w: end must be after start", createReservation.ErrInvalidInput), http.StatusBadRequest, "end must be after start"},
		{"outside window", "ana", body, createReservation.ErrDateOutsideWindow, http.StatusBadRequest, msgDateOutsideWindow},
		{"unknown room", "ana", body, createReservation.ErrRoomNotFound, http.StatusNotFound, msgRoomNotFound},
		{"slot taken", "ana", body, createReservation.ErrSlotTaken, http.StatusConflict, "this time slot was just taken"},
		{"range busy", "ana", body, createReservation.ErrSlotNotFree, http.StatusConflict, msgSlotNotFree},
		{"storage", "ana", body, fmt.Errorf("%w: insert", createReservation.ErrInternal), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &useCaseStub{err: tc.err}, tc.user, tc.payload)

			assert.Equal(t, tc.status, rec.Code)
			if tc.message != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.message, resp.Message)
			}
		})
	}
}
