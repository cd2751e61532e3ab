package notifications

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/internal/service/notifications/models"
)

// Service собирает уведомления пользователя из заявок и назначений на замену.
// Уведомления не хранятся, а вычисляются при каждом запросе
type Service struct {
	reservationRepo ReservationRepository
	schedules       ScheduleReader
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса
func NewService(reservationRepo ReservationRepository, schedules ScheduleReader, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		schedules:       schedules,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetNotifications возвращает уведомления пользователя, сначала новые
func (s *Service) GetNotifications(ctx context.Context, user string) (*models.NotificationListResponse, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}

	s.logger.Info("GetNotifications: building notifications for %s", user)

	// 1. Заявки пользователя
	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{RequesterName: &user})
	if err != nil {
		s.logger.Error("GetNotifications: failed to list reservations for %s: %v", user, err)
		return nil, fmt.Errorf("%w: GetNotifications - list reservations: %v", ErrInternal, err)
	}

	// 2. Назначения на замену из всех расписаний
	docs, err := s.schedules.Schedules(ctx)
	if err != nil {
		s.logger.Error("GetNotifications: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: GetNotifications - get schedules: %v", ErrInternal, err)
	}

	items := make([]domain.Notification, 0, len(reservations))
	unread := 0

	for _, r := range reservations {
		n := reservationNotification(r)
		if r.Status != domain.StatusPending {
			unread++
		}
		items = append(items, n)
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, e := range doc.Entries {
			if e.SubstituteTeacher == user {
				items = append(items, substitutionNotification(doc, e))
				unread++
			}
		}
	}

	// 3. Сортировка: сначала новые, запись без времени считается текущей
	now := s.timeProvider.Now()
	sortKey := func(n domain.Notification) time.Time {
		if n.Timestamp.IsZero() {
			return now
		}
		return n.Timestamp
	}
	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(items[i]).After(sortKey(items[j]))
	})

	resp := &models.NotificationListResponse{
		Notifications: make([]models.NotificationResponse, 0, len(items)),
		UnreadCount:   unread,
	}
	for _, n := range items {
		resp.Notifications = append(resp.Notifications, models.FromDomainNotification(n, TimeAgo(n.Timestamp, now)))
	}

	s.logger.Info("GetNotifications: %d notifications for %s", len(resp.Notifications), user)
	return resp, nil
}
