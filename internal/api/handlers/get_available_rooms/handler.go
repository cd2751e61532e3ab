package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_available_rooms"
)

const (
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRoomType   = "некорректный тип аудитории, ожидается lecture, laboratory или all"
	msgDateOutsideWindow = "дата вне окна бронирования"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query params: date (required, YYYY-MM-DD), type (optional, lecture|laboratory|all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, r.URL.Query().Get("type"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.Is(err, getAvailableRooms.ErrDateOutsideWindow):
			h.logger.Warn("GET /rooms/available - Date outside window: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		default:
			h.logger.Error("GET /rooms/available - Failed to get rooms: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - Rooms retrieved successfully: date=%s, type=%s, count=%d",
		dateStr, useCaseReq.RoomType, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
