package feed

import "sync"

const subscriberBuffer = 64

type subscriber struct {
	ch       chan Event
	channels map[string]struct{}
	lost     bool
}

func (s *subscriber) wants(ev Event) bool {
	if ev.Resync || len(s.channels) == 0 {
		return true
	}
	_, ok := s.channels[ev.Channel]
	return ok
}

// deliver никогда не блокирует публикацию: при переполнении событие
// отбрасывается, а подписчик при первой возможности получает Resync
func (s *subscriber) deliver(ev Event) {
	if s.lost {
		select {
		case s.ch <- Event{Resync: true}:
			s.lost = false
		default:
			return
		}
		if ev.Resync {
			return
		}
	}

	select {
	case s.ch <- ev:
	default:
		s.lost = true
	}
}

// Broadcaster раздаёт события всем подписчикам
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[uint64]*subscriber
	nextID uint64
	closed bool
}

// NewBroadcaster создает пустой Broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[uint64]*subscriber)}
}

// Subscribe подписывает на каналы; без каналов - на все.
// Возвращает канал событий и функцию отписки, которая закрывает канал
func (b *Broadcaster) Subscribe(channels ...string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &subscriber{ch: make(chan Event, subscriberBuffer), channels: make(map[string]struct{}, len(channels))}
	for _, c := range channels {
		s.channels[c] = struct{}{}
	}

	if b.closed {
		close(s.ch)
		return s.ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = s

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(s.ch)
			}
		})
	}
}

// Publish отправляет событие подписчикам нужного канала
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subs {
		if s.wants(ev) {
			s.deliver(ev)
		}
	}
}

// Close закрывает все каналы подписчиков
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, s := range b.subs {
		close(s.ch)
		delete(b.subs, id)
	}
}
