package get_user_schedule

import (
	"context"

	"github.com/m04kA/SMC-ClassroomService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context, professor string) (*models.WeeklyScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
