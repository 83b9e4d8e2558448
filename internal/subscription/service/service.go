// Package service orchestrates the registration pipeline: validate input,
// persist the pending subscriber and its confirmation token in one
// transaction, then dispatch the confirmation email.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"newsletter/internal/audit"
	"newsletter/internal/domain"
	"newsletter/internal/platform/metrics"
	"newsletter/internal/subscription/models"
	"newsletter/internal/subscription/store"
	"newsletter/internal/subscription/token"
	dErrors "newsletter/pkg/domain-errors"
	"newsletter/pkg/platform/sentinel"
	"newsletter/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=../mocks/service_mocks.go -package=mocks

// Dispatcher sends the confirmation email carrying the one-click link.
type Dispatcher interface {
	SendConfirmation(ctx context.Context, recipient, name, confirmationLink string) error
}

// Service implements subscriber registration and confirmation.
type Service struct {
	store      store.Store
	dispatcher Dispatcher
	auditor    *audit.Publisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	baseURL    string
	tracer     trace.Tracer

	// generateToken is swappable in tests to force collisions.
	generateToken func() string
}

func NewService(
	st store.Store,
	dispatcher Dispatcher,
	auditor *audit.Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	baseURL string,
) *Service {
	return &Service{
		store:         st,
		dispatcher:    dispatcher,
		auditor:       auditor,
		metrics:       m,
		logger:        logger,
		baseURL:       baseURL,
		tracer:        otel.Tracer("newsletter/subscription"),
		generateToken: token.Generate,
	}
}

// Subscribe registers a new pending subscriber and emails a confirmation
// link. The subscriber and token are committed before the email goes out, so
// a provider outage leaves a pending row that a later resend can pick up.
func (s *Service) Subscribe(ctx context.Context, req models.NewSubscription) error {
	ctx, span := s.tracer.Start(ctx, "subscription.subscribe")
	defer span.End()

	email, err := domain.ParseSubscriberEmail(req.Email)
	if err != nil {
		return err
	}
	name, err := domain.ParseSubscriberName(req.Name)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("subscriber.email", email.String()))

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to open transaction")
	}

	subscriberID, err := tx.InsertSubscriber(ctx, email.String(), name.String(), requestcontext.Now(ctx))
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.Wrap(err, dErrors.CodeConflict, "email is already subscribed")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to insert subscriber")
	}

	confirmationToken := s.generateToken()
	if err := tx.StoreToken(ctx, subscriberID, confirmationToken); err != nil {
		_ = tx.Rollback()
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store confirmation token")
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to commit subscription")
	}

	s.metrics.SubscriptionsCreated.Inc()
	s.auditor.Record(ctx, audit.Event{
		Action:       audit.ActionSubscriptionCreated,
		SubscriberID: subscriberID.String(),
		Email:        email.String(),
	})

	link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.baseURL, confirmationToken)
	if err := s.dispatcher.SendConfirmation(ctx, email.String(), name.String(), link); err != nil {
		// The row is already committed; the subscriber stays pending and the
		// caller sees the dispatch failure.
		s.metrics.EmailsFailed.Inc()
		s.logger.ErrorContext(ctx, "failed to dispatch confirmation email",
			"subscriber_id", subscriberID.String(),
			"error", err.Error(),
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send confirmation email")
	}
	s.metrics.EmailsDispatched.Inc()

	s.logger.InfoContext(ctx, "new subscriber registered",
		"subscriber_id", subscriberID.String(),
	)
	return nil
}

// Confirm flips the subscriber owning rawToken to confirmed. Unknown tokens
// map to CodeNotFound; repeating a confirmation succeeds without effect.
func (s *Service) Confirm(ctx context.Context, rawToken string) error {
	ctx, span := s.tracer.Start(ctx, "subscription.confirm")
	defer span.End()

	if len(rawToken) != token.Length {
		return dErrors.New(dErrors.CodeValidation, "malformed subscription token")
	}

	if err := s.store.ConfirmByToken(ctx, rawToken); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeNotFound, "unknown subscription token")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to confirm subscription")
	}

	s.metrics.SubscriptionsConfirmed.Inc()
	s.auditor.Record(ctx, audit.Event{Action: audit.ActionSubscriptionConfirmed})
	s.logger.InfoContext(ctx, "subscription confirmed")
	return nil
}
