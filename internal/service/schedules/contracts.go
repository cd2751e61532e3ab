package schedules

import (
	"context"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// ScheduleReader источник расписаний (кэш)
type ScheduleReader interface {
	Schedules(ctx context.Context) ([]*domain.ScheduleDocument, error)
}

// FacultyRepository интерфейс репозитория карточек преподавателей
type FacultyRepository interface {
	GetByProfessor(ctx context.Context, professor string) (*domain.FacultyRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
