package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClassroomService/internal/availability"
	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// UseCase use case для получения свободных аудиторий на дату
type UseCase struct {
	snapshots    SnapshotReader
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(snapshots SnapshotReader, windowDays int, logger Logger) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultReservationWindowDays
	}
	return &UseCase{
		snapshots:    snapshots,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных аудиторий
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: date=%s, type=%s", req.Date.Format(domain.DateFormat), req.RoomType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна попадать в окно бронирования
	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.windowDays); err != nil {
		uc.logger.Warn("GetAvailableRooms: date validation failed: %v", err)
		return nil, err
	}

	dateLabel := req.Date.Format(domain.DateLabelFormat)

	// 3. Получаем снимки расписаний и заявок на дату
	schedules, err := uc.snapshots.Schedules(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	reservations, err := uc.snapshots.ReservationsForDate(ctx, dateLabel)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get reservations for %s: %v", dateLabel, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Вычисляем свободные слоты и фильтруем по типу
	rooms := availability.FilterByType(
		availability.ListingRooms(req.Date, schedules, reservations),
		req.RoomType,
	)

	uc.logger.Info("GetAvailableRooms: %d rooms available on %s", len(rooms), dateLabel)

	return &Response{
		Date:      req.Date,
		DateLabel: dateLabel,
		Weekday:   availability.WeekdayOf(req.Date),
		Rooms:     rooms,
	}, nil
}
