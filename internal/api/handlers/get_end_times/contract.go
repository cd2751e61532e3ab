package get_end_times

import (
	"context"

	getEndTimes "github.com/m04kA/SMC-ClassroomService/internal/usecase/get_end_times"
)

type GetEndTimesUseCase interface {
	Execute(ctx context.Context, req *getEndTimes.Request) (*getEndTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
