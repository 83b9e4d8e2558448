// Package handler exposes the login flow over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsletter/internal/auth/models"
	"newsletter/internal/platform/middleware"
	dErrors "newsletter/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/auth-mocks.go -package=mocks Service

// SessionCookie names the cookie carrying the session token.
const SessionCookie = "session_token"

// Service defines the interface for login operations.
type Service interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Logout(ctx context.Context, token string) error
}

// Handler handles login endpoints.
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

// Register mounts the login routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/login", h.handleLoginForm)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
}

const loginForm = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta http-equiv="content-type" content="text/html; charset=utf-8">
    <title>Login</title>
</head>
<body>
    <form action="/login" method="post">
        <label>Username
            <input type="text" placeholder="Enter Username" name="username">
        </label>
        <label>Password
            <input type="password" placeholder="Enter Password" name="password">
        </label>
        <button type="submit">Login</button>
    </form>
</body>
</html>`

func (h *Handler) handleLoginForm(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(loginForm))
}

// handleLogin validates the form credentials and opens a session. Both
// success and failure redirect; the session cookie only appears on success.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "malformed login form",
			"request_id", requestID,
			"error", err.Error(),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sess, err := h.service.Login(ctx, models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			h.logger.WarnContext(ctx, "login rejected",
				"request_id", requestID,
			)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger.ErrorContext(ctx, "login failed",
			"request_id", requestID,
			"error_chain", dErrors.Chain(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// handleLogout drops the session and clears the cookie.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if err := h.service.Logout(ctx, cookie.Value); err != nil {
			h.logger.ErrorContext(ctx, "logout failed",
				"request_id", middleware.GetRequestID(ctx),
				"error_chain", dErrors.Chain(err),
			)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
