// Package audit captures structured audit events. Emission is fire-and-forget:
// a full buffer or failing sink is logged, never surfaced to the request path.
package audit

import (
	"context"
	"log/slog"
	"sync"

	"newsletter/pkg/requestcontext"
)

// Sink receives events from the worker. Implementations: Kafka for
// deployments, memory for tests and single-node setups.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Publisher buffers events for the background worker.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

// NewPublisher builds a Publisher with a bounded inbox.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{
		inbox:  make(chan Event, 256),
		logger: logger,
	}
}

// Record stamps the event from context and enqueues it. If the buffer is
// full the event is dropped with a log line; audit lag must not stall
// registrations.
func (p *Publisher) Record(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("audit inbox full, dropping event", "action", event.Action)
	}
}

// Inbox exposes the channel for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// MemorySink retains events in memory.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink constructs an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a snapshot for assertions.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
