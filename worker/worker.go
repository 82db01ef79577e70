package worker

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
)

// Worker a long-running background job
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs a unit of work on a fixed interval until the context
// is cancelled. Errors are logged and retried after ErrDelay.
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick start the tick loop
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = 10 * time.Second
	}

	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = delay
	}

	dur := time.Millisecond
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
			if err := onWork(ctx); err != nil {
				logger.FromContext(ctx).WithError(err).Errorln("tick failed")
				dur = errDelay
			} else {
				dur = delay
			}
		}
	}
}
