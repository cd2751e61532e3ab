package get_user_notifications

import (
	"context"

	"github.com/m04kA/SMC-ClassroomService/internal/service/notifications/models"
)

type NotificationService interface {
	GetNotifications(ctx context.Context, user string) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
