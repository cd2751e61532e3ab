package get_end_times

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getEndTimes "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_end_times"
	"github.com/m04kA/SMC-ClassroomService/pkg/logger"
)

type useCaseStub struct {
	got *getEndTimes.Request
	err error
}

func (u *useCaseStub) Execute(ctx context.Context, req *getEndTimes.Request) (*getEndTimes.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return &getEndTimes.Response{Room: req.Room, DateLabel: "3/3/2025", Start: "9:00 AM"}, nil
}

func serve(uc *useCaseStub, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/rooms/{roomName}/end-times", NewHandler(uc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &useCaseStub{}

	rec := serve(uc, "/rooms/Room%20301/end-times?date=2025-03-03&start=9:00%20AM")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Room 301", uc.got.Room)
	assert.Equal(t, "9:00 AM", uc.got.Start)

	var resp EndTimesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.EndTimes, "empty list is rendered as []")
	assert.Empty(t, resp.EndTimes)
}

func TestHandler_Errors(t *testing.T) {
	const ok = "/rooms/Room%20301/end-times?date=2025-03-03&start=9:00%20AM"

	assert.Equal(t, http.StatusBadRequest, serve(&useCaseStub{}, "/rooms/Room%20301/end-times?start=9:00%20AM").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&useCaseStub{err: getEndTimes.ErrInvalidInput}, ok).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&useCaseStub{err: getEndTimes.ErrDateOutsideWindow}, ok).Code)
	assert.Equal(t, http.StatusNotFound, serve(&useCaseStub{err: getEndTimes.ErrRoomNotFound}, ok).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&useCaseStub{err: getEndTimes.ErrInternal}, ok).Code)
}
