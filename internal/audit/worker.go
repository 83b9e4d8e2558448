package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the publisher inbox and hands them to a
// sink. Sink failures are logged and the worker keeps draining; audit is
// best effort.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Publish(ctx, event); err != nil {
				w.logger.Error("failed to publish audit event",
					"action", event.Action,
					"error", err.Error(),
				)
			}
		}
	}
}
