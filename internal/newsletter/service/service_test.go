package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter/internal/audit"
	"newsletter/internal/newsletter/models"
	"newsletter/internal/platform/metrics"
	"newsletter/internal/subscription/store"
	dErrors "newsletter/pkg/domain-errors"
)

type fakeSender struct {
	mu         sync.Mutex
	failFor    string
	recipients []string
}

func (s *fakeSender) SendIssue(_ context.Context, recipient, _, _, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if recipient == s.failFor {
		return errors.New("provider rejected")
	}
	s.recipients = append(s.recipients, recipient)
	return nil
}

func validIssue() models.Issue {
	return models.Issue{
		Title:   "Issue #1",
		Content: models.IssueContent{HTML: "<p>hello</p>", Text: "hello"},
	}
}

func newTestService(t *testing.T, st store.Store, sender Sender) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(st, sender, audit.NewPublisher(logger), metrics.New(prometheus.NewRegistry()), logger)
}

func seedSubscribers(t *testing.T, st *store.MemoryStore, confirmed []string, pending []string) {
	t.Helper()
	ctx := context.Background()
	for _, email := range append(append([]string{}, confirmed...), pending...) {
		tx, err := st.Begin(ctx)
		require.NoError(t, err)
		id, err := tx.InsertSubscriber(ctx, email, "Reader", time.Now())
		require.NoError(t, err)
		require.NoError(t, tx.StoreToken(ctx, id, "token-for-"+email))
		require.NoError(t, tx.Commit())
	}
	for _, email := range confirmed {
		require.NoError(t, st.ConfirmByToken(ctx, "token-for-"+email))
	}
}

func TestPublishSendsOnlyToConfirmed(t *testing.T) {
	st := store.NewMemory()
	seedSubscribers(t, st,
		[]string{"a@example.com", "b@example.com"},
		[]string{"pending@example.com"},
	)
	sender := &fakeSender{}
	svc := newTestService(t, st, sender)

	require.NoError(t, svc.Publish(context.Background(), validIssue()))

	sort.Strings(sender.recipients)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sender.recipients)
}

func TestPublishWithNoConfirmedSubscribers(t *testing.T) {
	st := store.NewMemory()
	seedSubscribers(t, st, nil, []string{"pending@example.com"})
	sender := &fakeSender{}
	svc := newTestService(t, st, sender)

	require.NoError(t, svc.Publish(context.Background(), validIssue()))
	assert.Empty(t, sender.recipients)
}

func TestPublishRejectsIncompleteIssue(t *testing.T) {
	st := store.NewMemory()
	sender := &fakeSender{}
	svc := newTestService(t, st, sender)

	cases := map[string]models.Issue{
		"missing title": {Content: models.IssueContent{HTML: "<p>x</p>", Text: "x"}},
		"missing html":  {Title: "Issue", Content: models.IssueContent{Text: "x"}},
		"missing text":  {Title: "Issue", Content: models.IssueContent{HTML: "<p>x</p>"}},
	}
	for label, issue := range cases {
		t.Run(label, func(t *testing.T) {
			err := svc.Publish(context.Background(), issue)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
	assert.Empty(t, sender.recipients)
}

func TestPublishSurfacesDeliveryFailure(t *testing.T) {
	st := store.NewMemory()
	seedSubscribers(t, st, []string{"a@example.com", "b@example.com"}, nil)
	sender := &fakeSender{failFor: "a@example.com"}
	svc := newTestService(t, st, sender)

	err := svc.Publish(context.Background(), validIssue())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
