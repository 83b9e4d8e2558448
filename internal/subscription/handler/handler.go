// Package handler exposes the registration pipeline over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsletter/internal/platform/middleware"
	"newsletter/internal/subscription/models"
	dErrors "newsletter/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/subscription-mocks.go -package=mocks Service

// Service defines the interface for subscription operations.
type Service interface {
	Subscribe(ctx context.Context, req models.NewSubscription) error
	Confirm(ctx context.Context, token string) error
}

// Handler handles subscription endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Register mounts the subscription routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/subscription", h.handleSubscribe)
	r.Get("/subscriptions/confirm", h.handleConfirm)
}

// handleSubscribe registers a pending subscriber. Responses carry no body;
// clients only see coarse status codes and diagnostics live in the logs.
func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.NewSubscription
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid subscription request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.Subscribe(ctx, req); err != nil {
		h.writeStatus(ctx, w, err, "failed to register subscriber")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleConfirm flips a pending subscriber to confirmed via the token from
// the confirmation link.
func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	token := r.URL.Query().Get("subscription_token")
	if token == "" {
		h.logger.WarnContext(ctx, "confirmation request without token",
			"request_id", requestID,
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.Confirm(ctx, token); err != nil {
		h.writeStatus(ctx, w, err, "failed to confirm subscription")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// writeStatus maps domain errors onto the coarse 400/500 split and logs the
// full cause chain server-side.
func (h *Handler) writeStatus(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	requestID := middleware.GetRequestID(ctx)

	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvalidInput, dErrors.CodeValidation, dErrors.CodeNotFound:
		h.logger.WarnContext(ctx, msg,
			"request_id", requestID,
			"error", err.Error(),
		)
		w.WriteHeader(http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestID,
			"error_chain", dErrors.Chain(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
