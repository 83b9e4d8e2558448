package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"newsletter/internal/admin/handler/mocks"
	authHandler "newsletter/internal/auth/handler"
	"newsletter/internal/auth/models"
	dErrors "newsletter/pkg/domain-errors"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(mockService, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r, mockService
}

func TestDashboardGreetsLoggedInEditor(t *testing.T) {
	router, mockService := newTestHandler(t)

	now := time.Now()
	mockService.EXPECT().
		SessionFor(gomock.Any(), "session-token-value").
		Return(&models.Session{
			Token:     "session-token-value",
			UserID:    uuid.New(),
			Username:  "editor",
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: authHandler.SessionCookie, Value: "session-token-value"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome editor!")
}

func TestDashboardRedirectsWithoutCookie(t *testing.T) {
	router, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboardRedirectsOnStaleSession(t *testing.T) {
	router, mockService := newTestHandler(t)

	mockService.EXPECT().
		SessionFor(gomock.Any(), "stale-token").
		Return(nil, dErrors.New(dErrors.CodeUnauthorized, "no active session"))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: authHandler.SessionCookie, Value: "stale-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboardSessionStoreFailure(t *testing.T) {
	router, mockService := newTestHandler(t)

	mockService.EXPECT().
		SessionFor(gomock.Any(), "session-token-value").
		Return(nil, dErrors.New(dErrors.CodeInternal, "failed to load session"))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: authHandler.SessionCookie, Value: "session-token-value"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
