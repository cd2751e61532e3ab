package get_user_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomService/internal/api/middleware"
)

const (
	msgMissingUserName = "отсутствует имя пользователя"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserName(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/reservations - Missing user name")
		handlers.RespondUnauthorized(w, msgMissingUserName)
		return
	}

	result, err := h.service.GetUserReservations(r.Context(), user)
	if err != nil {
		h.logger.Error("GET /users/me/reservations - Failed to get reservations: user=%s, error=%v", user, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/reservations - Reservations retrieved successfully: user=%s, count=%d",
		user, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
