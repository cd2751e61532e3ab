package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 1 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Hub слушает NOTIFY каналы Postgres через pq.Listener и раздаёт события подписчикам
type Hub struct {
	*Broadcaster

	listener *pq.Listener
	logger   Logger
	metrics  Metrics
}

// NewHub открывает отдельное соединение для LISTEN и подписывается на каналы
func NewHub(dsn string, channels []string, logger Logger, metrics Metrics) (*Hub, error) {
	onEvent := func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed:
			logger.Warn("feed: connection attempt failed: %v", err)
		case pq.ListenerEventDisconnected:
			logger.Warn("feed: disconnected: %v", err)
		case pq.ListenerEventReconnected:
			logger.Info("feed: reconnected")
		}
	}

	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, onEvent)
	for _, ch := range channels {
		if err := listener.Listen(ch); err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("feed: listen %s: %w", ch, err)
		}
	}

	return &Hub{
		Broadcaster: NewBroadcaster(),
		listener:    listener,
		logger:      logger,
		metrics:     metrics,
	}, nil
}

// Run читает уведомления до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case n, ok := <-h.listener.Notify:
			if !ok {
				return
			}
			// nil приходит после переподключения: события за время разрыва потеряны
			if n == nil {
				h.Publish(Event{Resync: true})
				continue
			}
			h.metrics.IncFeedEvent(n.Channel)
			h.Publish(Event{Channel: n.Channel, Payload: n.Extra})

		case <-ticker.C:
			go func() {
				if err := h.listener.Ping(); err != nil {
					h.logger.Warn("feed: ping failed: %v", err)
				}
			}()
		}
	}
}

// Close останавливает listener и закрывает подписки
func (h *Hub) Close() error {
	h.Broadcaster.Close()
	return h.listener.Close()
}
