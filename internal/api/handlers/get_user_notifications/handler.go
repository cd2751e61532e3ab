package get_user_notifications

import (
	"net/http"

	"github.com/m04kA/SMC-ClassroomService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassroomService/internal/api/middleware"
)

const (
	msgMissingUserName = "отсутствует имя пользователя"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserName(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/notifications - Missing user name")
		handlers.RespondUnauthorized(w, msgMissingUserName)
		return
	}

	result, err := h.service.GetNotifications(r.Context(), user)
	if err != nil {
		h.logger.Error("GET /users/me/notifications - Failed to get notifications: user=%s, error=%v", user, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/notifications - Notifications retrieved: user=%s, count=%d, unread=%d",
		user, len(result.Notifications), result.UnreadCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
