package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-ClassroomService/internal/domain"
	"github.com/m04kA/SMC-ClassroomService/internal/infra/feed"
)

const (
	schedulesKey      = "schedules"
	reservationPrefix = "reservations:"

	cacheSchedules    = "schedules"
	cacheReservations = "reservations"
)

// ScheduleLoader источник расписаний
type ScheduleLoader interface {
	ListAll(ctx context.Context) ([]*domain.ScheduleDocument, error)
}

// ReservationLoader источник бронирований
type ReservationLoader interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Metrics счётчик попаданий в кэш
type Metrics interface {
	IncCacheLookup(cache string, hit bool)
}

// Snapshots кэширует снимки расписаний и бронирований на дату.
// Записи живут до TTL или до события из feed, которое их сбрасывает.
// Возвращаемые слайсы общие для всех читателей, изменять их нельзя
type Snapshots struct {
	store        *gocache.Cache
	schedules    ScheduleLoader
	reservations ReservationLoader
	metrics      Metrics

	// gen растет при каждом сбросе. Загрузка, начатая до сброса, в кэш не пишется
	mu  sync.Mutex
	gen uint64
}

// NewSnapshots создает кэш снимков
func NewSnapshots(schedules ScheduleLoader, reservations ReservationLoader, ttl, cleanup time.Duration, metrics Metrics) *Snapshots {
	return &Snapshots{
		store:        gocache.New(ttl, cleanup),
		schedules:    schedules,
		reservations: reservations,
		metrics:      metrics,
	}
}

// Schedules возвращает все расписания
func (s *Snapshots) Schedules(ctx context.Context) ([]*domain.ScheduleDocument, error) {
	if v, ok := s.store.Get(schedulesKey); ok {
		s.metrics.IncCacheLookup(cacheSchedules, true)
		return v.([]*domain.ScheduleDocument), nil
	}
	s.metrics.IncCacheLookup(cacheSchedules, false)

	gen := s.generation()
	docs, err := s.schedules.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s.storeIfCurrent(gen, schedulesKey, docs)
	return docs, nil
}

// ReservationsForDate возвращает заявки pending/approved на дату
func (s *Snapshots) ReservationsForDate(ctx context.Context, dateLabel string) ([]*domain.Reservation, error) {
	key := reservationPrefix + dateLabel
	if v, ok := s.store.Get(key); ok {
		s.metrics.IncCacheLookup(cacheReservations, true)
		return v.([]*domain.Reservation), nil
	}
	s.metrics.IncCacheLookup(cacheReservations, false)

	return s.loadReservations(ctx, dateLabel)
}

// FreshReservationsForDate читает заявки мимо кэша и обновляет его
func (s *Snapshots) FreshReservationsForDate(ctx context.Context, dateLabel string) ([]*domain.Reservation, error) {
	return s.loadReservations(ctx, dateLabel)
}

func (s *Snapshots) loadReservations(ctx context.Context, dateLabel string) ([]*domain.Reservation, error) {
	gen := s.generation()
	label := dateLabel
	list, err := s.reservations.List(ctx, domain.ReservationsFilter{
		DateLabel: &label,
		Statuses:  domain.BlockingStatuses,
	})
	if err != nil {
		return nil, err
	}

	s.storeIfCurrent(gen, reservationPrefix+dateLabel, list)
	return list, nil
}

func (s *Snapshots) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// storeIfCurrent кладет снимок, только если с начала загрузки не было сброса
func (s *Snapshots) storeIfCurrent(gen uint64, key string, v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	s.store.SetDefault(key, v)
}

// InvalidateSchedules сбрасывает снимок расписаний
func (s *Snapshots) InvalidateSchedules() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.store.Delete(schedulesKey)
}

// InvalidateDate сбрасывает снимок заявок на дату
func (s *Snapshots) InvalidateDate(dateLabel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.store.Delete(reservationPrefix + dateLabel)
}

// Flush сбрасывает все снимки
func (s *Snapshots) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.store.Flush()
}

// HandleEvent сбрасывает снимки по событию из feed
func (s *Snapshots) HandleEvent(ev feed.Event) {
	switch {
	case ev.Resync:
		s.Flush()
	case ev.Channel == feed.ChannelSchedules:
		s.InvalidateSchedules()
	case ev.Channel == feed.ChannelReservations:
		if label := strings.TrimSpace(ev.Payload); label != "" {
			s.InvalidateDate(label)
			return
		}
		s.flushReservations()
	}
}

func (s *Snapshots) flushReservations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	for key := range s.store.Items() {
		if strings.HasPrefix(key, reservationPrefix) {
			s.store.Delete(key)
		}
	}
}
