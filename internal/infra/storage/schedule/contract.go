package schedule

import "github.com/m04kA/SMC-ClassroomService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

// Logger интерфейс для логирования пропущенных записей
type Logger interface {
	Warn(format string, v ...interface{})
}
