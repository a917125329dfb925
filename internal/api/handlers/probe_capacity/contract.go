package probe_capacity

import (
	"context"

	probeCapacity "github.com/m04kA/SMC-PhotoStudioService/internal/usecase/probe_capacity"
)

type ProbeCapacityUseCase interface {
	Execute(ctx context.Context, req *probeCapacity.Request) (*probeCapacity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
