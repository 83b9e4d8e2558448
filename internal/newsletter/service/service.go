// Package service publishes newsletter issues to confirmed subscribers.
package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"newsletter/internal/audit"
	"newsletter/internal/newsletter/models"
	"newsletter/internal/platform/metrics"
	"newsletter/internal/subscription/store"
	dErrors "newsletter/pkg/domain-errors"
)

// maxConcurrentSends bounds the provider fan-out per issue.
const maxConcurrentSends = 8

// Sender delivers one rendered issue to one recipient.
type Sender interface {
	SendIssue(ctx context.Context, recipient, subject, htmlBody, textBody string) error
}

// Service fans an issue out to every confirmed subscriber.
type Service struct {
	store   store.Store
	sender  Sender
	auditor *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(
	st store.Store,
	sender Sender,
	auditor *audit.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:   st,
		sender:  sender,
		auditor: auditor,
		metrics: m,
		logger:  logger,
	}
}

// Publish sends the issue to all confirmed subscribers. Pending subscribers
// never receive issues. The first delivery failure cancels the remaining
// sends and surfaces as an internal error.
func (s *Service) Publish(ctx context.Context, issue models.Issue) error {
	if !issue.Validate() {
		return dErrors.New(dErrors.CodeInvalidInput, "issue requires a title and both content bodies")
	}

	recipients, err := s.store.ListConfirmedEmails(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list confirmed subscribers")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSends)
	for _, recipient := range recipients {
		g.Go(func() error {
			if err := s.sender.SendIssue(ctx, recipient, issue.Title, issue.Content.HTML, issue.Content.Text); err != nil {
				s.metrics.EmailsFailed.Inc()
				s.logger.ErrorContext(ctx, "failed to deliver newsletter issue",
					"error", err.Error(),
				)
				return err
			}
			s.metrics.EmailsDispatched.Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to deliver newsletter issue")
	}

	s.metrics.NewslettersPublished.Inc()
	s.auditor.Record(ctx, audit.Event{
		Action: audit.ActionNewsletterPublished,
		Detail: issue.Title,
	})
	s.logger.InfoContext(ctx, "newsletter issue published",
		"recipients", len(recipients),
	)
	return nil
}
