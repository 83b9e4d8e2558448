// Package handler serves the session-gated admin area.
package handler

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	authHandler "newsletter/internal/auth/handler"
	"newsletter/internal/auth/models"
	"newsletter/internal/platform/middleware"
	dErrors "newsletter/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/admin-mocks.go -package=mocks Service

// Service resolves session cookies to live sessions.
type Service interface {
	SessionFor(ctx context.Context, token string) (*models.Session, error)
}

// Handler handles admin endpoints.
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

// Register mounts the admin routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/dashboard", h.handleDashboard)
}

// handleDashboard greets the logged-in editor. Anonymous visitors are sent
// to the login form.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(authHandler.SessionCookie)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sess, err := h.service.SessionFor(ctx, cookie.Value)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger.ErrorContext(ctx, "failed to resolve session",
			"request_id", middleware.GetRequestID(ctx),
			"error_chain", dErrors.Chain(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta http-equiv="content-type" content="text/html; charset=utf-8">
    <title>Admin dashboard</title>
</head>
<body>
    <p>Welcome %s!</p>
</body>
</html>`, html.EscapeString(sess.Username))
}
