// Package handler exposes newsletter publishing over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	authModels "newsletter/internal/auth/models"
	"newsletter/internal/newsletter/models"
	"newsletter/internal/platform/middleware"
	dErrors "newsletter/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/newsletter-mocks.go -package=mocks Service,CredentialsValidator

// Service publishes an issue to confirmed subscribers.
type Service interface {
	Publish(ctx context.Context, issue models.Issue) error
}

// CredentialsValidator checks HTTP basic auth pairs against the user store.
type CredentialsValidator interface {
	ValidateCredentials(ctx context.Context, creds authModels.Credentials) (uuid.UUID, error)
}

// Handler handles newsletter endpoints.
type Handler struct {
	logger      *slog.Logger
	service     Service
	credentials CredentialsValidator
}

func New(service Service, credentials CredentialsValidator, logger *slog.Logger) *Handler {
	return &Handler{
		logger:      logger,
		service:     service,
		credentials: credentials,
	}
}

// Register mounts the newsletter routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/newsletters", h.handlePublish)
}

// handlePublish authenticates the caller with basic auth, then fans the
// issue out to every confirmed subscriber.
func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	username, password, ok := r.BasicAuth()
	if !ok {
		h.challenge(w)
		return
	}
	userID, err := h.credentials.ValidateCredentials(ctx, authModels.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			h.logger.WarnContext(ctx, "publish rejected",
				"request_id", requestID,
				"username", username,
			)
			h.challenge(w)
			return
		}
		h.logger.ErrorContext(ctx, "credential validation failed",
			"request_id", requestID,
			"error_chain", dErrors.Chain(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var issue models.Issue
	if err := json.NewDecoder(r.Body).Decode(&issue); err != nil {
		h.logger.WarnContext(ctx, "invalid newsletter request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.Publish(ctx, issue); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvalidInput) {
			h.logger.WarnContext(ctx, "invalid newsletter issue",
				"request_id", requestID,
				"error", err.Error(),
			)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to publish newsletter issue",
			"request_id", requestID,
			"user_id", userID.String(),
			"error_chain", dErrors.Chain(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="publish"`)
	w.WriteHeader(http.StatusUnauthorized)
}
