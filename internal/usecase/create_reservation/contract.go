package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// SnapshotReader чтение расписаний и свежих заявок на дату
type SnapshotReader interface {
	Schedules(ctx context.Context) ([]*domain.ScheduleDocument, error)
	FreshReservationsForDate(ctx context.Context, dateLabel string) ([]*domain.Reservation, error)
}

// Metrics счётчик исходов бронирования
type Metrics interface {
	IncReservationOutcome(outcome string)
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
