package feed

import (
	"context"
	"sync"
)

type handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (h *handle) stop() {
	h.cancel()
	<-h.done
}

// Manager владеет подписками по ключу. Повторная подписка с тем же ключом
// сначала отменяет предыдущую и дожидается её завершения.
// Обработчики событий не должны вызывать методы Manager
type Manager struct {
	source Source
	logger Logger

	mu     sync.Mutex
	subs   map[string]*handle
	closed bool
}

// NewManager создает менеджер подписок поверх источника событий
func NewManager(source Source, logger Logger) *Manager {
	return &Manager{
		source: source,
		logger: logger,
		subs:   make(map[string]*handle),
	}
}

// Subscribe вызывает onEvent для каждого события каналов до отмены ctx,
// Unsubscribe(key) или следующего Subscribe с тем же ключом
func (m *Manager) Subscribe(ctx context.Context, key string, channels []string, onEvent func(Event)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}

	if prev, ok := m.subs[key]; ok {
		prev.stop()
		delete(m.subs, key)
		m.logger.Info("feed: resubscribing %s", key)
	}

	events, unsubscribe := m.source.Subscribe(channels...)
	subCtx, cancel := context.WithCancel(ctx)
	h := &handle{cancel: cancel, done: make(chan struct{})}
	m.subs[key] = h

	go func() {
		defer close(h.done)
		defer unsubscribe()

		for {
			select {
			case <-subCtx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				onEvent(ev)
			}
		}
	}()

	return nil
}

// Unsubscribe отменяет подписку; неизвестный ключ игнорируется
func (m *Manager) Unsubscribe(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.subs[key]; ok {
		h.stop()
		delete(m.subs, key)
	}
}

// Active проверяет, есть ли подписка с ключом
func (m *Manager) Active(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.subs[key]
	if !ok {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// Close отменяет все подписки
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	for key, h := range m.subs {
		h.stop()
		delete(m.subs, key)
	}
}
