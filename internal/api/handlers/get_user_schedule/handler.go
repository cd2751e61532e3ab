package get_user_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomService/internal/api/middleware"
)

const (
	msgMissingUserName = "отсутствует имя пользователя"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professor, ok := middleware.GetUserName(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/schedule - Missing user name")
		handlers.RespondUnauthorized(w, msgMissingUserName)
		return
	}

	result, err := h.service.GetWeeklySchedule(r.Context(), professor)
	if err != nil {
		h.logger.Error("GET /users/me/schedule - Failed to build schedule: professor=%s, error=%v", professor, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/schedule - Schedule retrieved successfully: professor=%s", professor)
	handlers.RespondJSON(w, http.StatusOK, result)
}
