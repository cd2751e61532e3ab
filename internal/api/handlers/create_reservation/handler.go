package create_reservation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ClassroomService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserName    = "отсутствует имя пользователя"
	msgDateOutsideWindow  = "дата вне окна бронирования"
	msgRoomNotFound       = "аудитория не найдена"
	msgSlotNotFree        = "выбранный интервал времени недоступен"
	msgSlotTaken          = "this time slot was just taken"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.GetUserName(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user name")
		handlers.RespondUnauthorized(w, msgMissingUserName)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(requester)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user=%s, error=%v", requester, err)
			handlers.RespondBadRequest(w, unwrapMessage(err))

		case errors.Is(err, createReservation.ErrDateOutsideWindow):
			h.logger.Warn("POST /reservations - Date outside window: user=%s, date=%s", requester, req.Date)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: user=%s, room=%s", requester, req.Room)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user=%s, room=%s, date=%s, %s - %s",
				requester, req.Room, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrSlotNotFree):
			h.logger.Warn("POST /reservations - Range not free: user=%s, room=%s, date=%s, %s - %s",
				requester, req.Room, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotNotFree)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user=%s, room=%s, error=%v",
				requester, req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user=%s, room=%s",
		result.Reservation.ID, requester, result.Reservation.RoomName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// unwrapMessage убирает префикс пакета из текста ошибки валидации
func unwrapMessage(err error) string {
	if msg, ok := strings.CutPrefix(err.Error(), createReservation.ErrInvalidInput.Error()+": "); ok && msg != "" {
		return msg
	}
	return "invalid input data"
}
