package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter/pkg/requestcontext"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisherRecordStampsContext(t *testing.T) {
	p := NewPublisher(discardLogger())

	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ctx := requestcontext.WithRequestID(context.Background(), "req-123")
	ctx = requestcontext.WithTime(ctx, now)

	p.Record(ctx, Event{Action: ActionSubscriptionCreated, Email: "a@example.com"})

	select {
	case got := <-p.Inbox():
		assert.Equal(t, ActionSubscriptionCreated, got.Action)
		assert.Equal(t, "req-123", got.RequestID)
		assert.Equal(t, now, got.Timestamp)
	default:
		t.Fatal("expected event in inbox")
	}
}

func TestPublisherRecordKeepsExplicitFields(t *testing.T) {
	p := NewPublisher(discardLogger())

	stamped := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithRequestID(context.Background(), "req-ctx")
	p.Record(ctx, Event{
		Action:    ActionLoginFailed,
		Timestamp: stamped,
		RequestID: "req-explicit",
	})

	got := <-p.Inbox()
	assert.Equal(t, stamped, got.Timestamp)
	assert.Equal(t, "req-explicit", got.RequestID)
}

func TestPublisherDropsWhenInboxFull(t *testing.T) {
	p := NewPublisher(discardLogger())

	for i := 0; i < 300; i++ {
		p.Record(context.Background(), Event{Action: ActionSubscriptionCreated})
	}

	// Buffer holds 256; overflow is dropped, not blocked on.
	assert.Len(t, p.Inbox(), 256)
}

func TestWorkerDrainsToSink(t *testing.T) {
	p := NewPublisher(discardLogger())
	sink := NewMemorySink()
	worker := NewWorker(sink, p.Inbox(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	p.Record(ctx, Event{Action: ActionSubscriptionConfirmed, SubscriberID: "sub-1"})
	p.Record(ctx, Event{Action: ActionNewsletterPublished, UserID: "user-1"})

	require.Eventually(t, func() bool {
		return len(sink.Events()) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done

	events := sink.Events()
	assert.Equal(t, ActionSubscriptionConfirmed, events[0].Action)
	assert.Equal(t, ActionNewsletterPublished, events[1].Action)
}

type failingSink struct{ calls int }

func (s *failingSink) Publish(context.Context, Event) error {
	s.calls++
	return assert.AnError
}

func TestWorkerKeepsDrainingOnSinkFailure(t *testing.T) {
	inbox := make(chan Event, 2)
	inbox <- Event{Action: ActionLoginSucceeded}
	inbox <- Event{Action: ActionLoginFailed}

	sink := &failingSink{}
	worker := NewWorker(sink, inbox, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := worker.Run(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, sink.calls)
}
