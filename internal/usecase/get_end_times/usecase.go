package get_end_times

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClassroomService/internal/availability"
	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// UseCase use case для выбора времени окончания брони
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

// Execute возвращает времена окончания, достижимые от start без разрывов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetEndTimes: room=%s, date=%s, start=%s", req.Room, req.Date.Format(domain.DateFormat), req.Start)

	// 1. Валидация входных данных
	start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetEndTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна попадать в окно бронирования
	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.windowDays); err != nil {
		uc.logger.Warn("GetEndTimes: date %s outside window", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	dateLabel := req.Date.Format(domain.DateLabelFormat)

	// 3. Получаем снимки
	schedules, err := uc.snapshots.Schedules(ctx)
	if err != nil {
		uc.logger.Error("GetEndTimes: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	reservations, err := uc.snapshots.ReservationsForDate(ctx, dateLabel)
	if err != nil {
		uc.logger.Error("GetEndTimes: failed to get reservations for %s: %v", dateLabel, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Ищем аудиторию среди вычисленных на дату
	room, ok := availability.FindRoom(availability.DeriveRooms(req.Date, schedules, reservations), req.Room)
	if !ok {
		uc.logger.Warn("GetEndTimes: room %s not found", req.Room)
		return nil, ErrRoomNotFound
	}

	// 5. Собираем непрерывный блок от выбранного начала
	ends := availability.ContiguousEndTimes(start.Minutes(), room.FreeSlots)

	return &Response{
		Room:       room.Name,
		DateLabel:  dateLabel,
		Start:      start.String(),
		StartTimes: availability.StartTimes(room.FreeSlots),
		EndTimes:   ends,
	}, nil
}
