package get_end_times

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	getEndTimes "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_end_times"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStart      = "некорректное время начала, ожидается H:MM AM/PM"
	msgDateOutsideWindow = "дата вне окна бронирования"
	msgRoomNotFound      = "аудитория не найдена"
)

type Handler struct {
	useCase GetEndTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetEndTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomName}/end-times
// Query params: date (required, YYYY-MM-DD), start (required, "9:00 AM")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := mux.Vars(r)["roomName"]

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{roomName}/end-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getEndTimes.Request{
		Date:  date,
		Room:  room,
		Start: r.URL.Query().Get("start"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getEndTimes.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomName}/end-times - Invalid input: room=%s, error=%v", room, err)
			handlers.RespondBadRequest(w, msgInvalidStart)

		case errors.Is(err, getEndTimes.ErrDateOutsideWindow):
			h.logger.Warn("GET /rooms/{roomName}/end-times - Date outside window: room=%s", room)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, getEndTimes.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomName}/end-times - Room not found: room=%s", room)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{roomName}/end-times - Failed to get end times: room=%s, error=%v", room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomName}/end-times - End times retrieved: room=%s, start=%s, count=%d",
		result.Room, result.Start, len(result.EndTimes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
