package get_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// SnapshotReader снимки расписаний и бронирований (обычно из кэша)
type SnapshotReader interface {
	Schedules(ctx context.Context) ([]*domain.ScheduleDocument, error)
	ReservationsForDate(ctx context.Context, dateLabel string) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
