package feed

import "errors"

// Каналы NOTIFY, которые генерируют триггеры таблиц
const (
	ChannelSchedules    = "schedules_changed"
	ChannelReservations = "reservations_changed"
)

// ErrManagerClosed возвращается при подписке после Close
var ErrManagerClosed = errors.New("feed: subscription manager is closed")

// Event уведомление об изменении данных.
// Resync означает, что часть событий могла потеряться и подписчик должен
// перечитать всё (переподключение к БД, переполнение буфера)
type Event struct {
	Channel string
	Payload string
	Resync  bool
}

// Source источник событий с фильтрацией по каналам
type Source interface {
	Subscribe(channels ...string) (<-chan Event, func())
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счётчик событий
type Metrics interface {
	IncFeedEvent(channel string)
}
