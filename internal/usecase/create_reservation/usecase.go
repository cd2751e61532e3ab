package create_reservation

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/availability"
	"github.com/m04kA/SMC-ClassroomService/internal/domain"
)

// Исходы для метрики
const (
	outcomeCreated  = "created"
	outcomeRejected = "rejected"
	outcomeConflict = "conflict"
	outcomeFailed   = "failed"
)

// UseCase use case для создания заявки на аудиторию
type UseCase struct {
	reservationRepo ReservationRepository
	snapshots       SnapshotReader
	metrics         Metrics
	windowDays      int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	snapshots SnapshotReader,
	metrics Metrics,
	windowDays int,
	logger Logger,
) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultReservationWindowDays
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		snapshots:       snapshots,
		metrics:         metrics,
		windowDays:      windowDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает заявку в статусе pending.
//
// Проверка конфликта и вставка не атомарны: между чтением заявок и
// записью другая заявка на тот же слот может успеть пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: requester=%s, room=%s, date=%s, %s-%s",
		req.RequesterName, req.Room, req.Date.Format(domain.DateFormat), req.Start, req.End)

	res, outcome, err := uc.execute(ctx, req)
	uc.metrics.IncReservationOutcome(outcome)
	if err != nil {
		return nil, err
	}

	return &Response{Reservation: res}, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Reservation, string, error) {
	// 1. Валидация входных данных
	start, end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, outcomeRejected, err
	}

	// 2. Дата должна попадать в окно бронирования
	if err := validateDate(req.Date, uc.timeProvider.Now(), uc.windowDays); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, outcomeRejected, err
	}

	dateLabel := req.Date.Format(domain.DateLabelFormat)
	timeSlot := availability.SlotLabel(start.Minutes(), end.Minutes())

	// 3. Читаем расписания и свежие заявки на дату (мимо кэша)
	schedules, err := uc.snapshots.Schedules(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get schedules: %v", err)
		return nil, outcomeFailed, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	reservations, err := uc.snapshots.FreshReservationsForDate(ctx, dateLabel)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get reservations for %s: %v", dateLabel, err)
		return nil, outcomeFailed, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Заявка pending/approved на тот же слот уже есть
	if availability.HasConflict(req.Room, timeSlot, reservations) {
		uc.logger.Warn("CreateReservation: %s in %s on %s was just taken", timeSlot, req.Room, dateLabel)
		return nil, outcomeConflict, ErrSlotTaken
	}

	// 5. Диапазон должен быть непрерывным блоком свободных слотов аудитории
	room, ok := availability.FindRoom(availability.DeriveRooms(req.Date, schedules, reservations), req.Room)
	if !ok {
		uc.logger.Warn("CreateReservation: room %s not found", req.Room)
		return nil, outcomeRejected, ErrRoomNotFound
	}

	ends := availability.ContiguousEndTimes(start.Minutes(), room.FreeSlots)
	if !slices.Contains(ends, end.String()) {
		uc.logger.Warn("CreateReservation: %s in %s is not free on %s", timeSlot, room.Name, dateLabel)
		return nil, outcomeRejected, ErrSlotNotFree
	}

	// 6. Сохраняем заявку
	created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		RoomName:      room.Name,
		RoomType:      room.Type,
		DateLabel:     dateLabel,
		Date:          time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC),
		TimeSlot:      timeSlot,
		Notes:         req.Notes,
		RequesterName: req.RequesterName,
		Status:        domain.StatusPending,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, outcomeFailed, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)
	return created, outcomeCreated, nil
}
