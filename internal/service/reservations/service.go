package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ClassroomService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClassroomService/internal/service/reservations/models"
)

// Service сервис для работы с заявками на аудитории
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(reservationRepo ReservationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetUserReservations возвращает заявки пользователя, сначала новые
func (s *Service) GetUserReservations(ctx context.Context, requester string) (*models.ReservationListResponse, error) {
	requester = strings.TrimSpace(requester)
	if requester == "" {
		return nil, fmt.Errorf("%w: requester is required", ErrInvalidInput)
	}

	s.logger.Info("GetUserReservations: fetching reservations for %s", requester)

	list, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{RequesterName: &requester})
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for %s: %v", requester, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// List возвращает заявки по фильтру: по дате в порядке подачи, иначе сначала новые
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationsFilter{}

	if req.Date != nil {
		label := req.Date.Format(domain.DateLabelFormat)
		filter.DateLabel = &label
	}
	if req.Room != nil {
		room := strings.TrimSpace(*req.Room)
		if room != "" {
			filter.RoomName = &room
		}
	}
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status filter %q", *req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Statuses = []domain.ReservationStatus{status}
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// UpdateStatus одобряет или отклоняет заявку. Решение принимается только по pending.
// Чтение и запись идут в одной транзакции, строка блокируется на время проверки
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d -> %s", id, req.Status)

	status, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for reservation id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Reservation
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get reservation: %v", ErrInternal, err)
		}

		if !res.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, status)
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, status); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		res.Status = status
		updated = res
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound), errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: reservation id=%d: %v", id, err)
		default:
			s.logger.Error("UpdateStatus: reservation id=%d: %v", id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: UpdateStatus - transaction: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%d is now %s", id, status)
	return models.FromDomainReservation(updated), nil
}
