package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newsletter/internal/auth/handler/mocks"
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

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginFormIsServed(t *testing.T) {
	router, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<form action="/login" method="post">`)
}

func TestLoginSuccessSetsCookieAndRedirects(t *testing.T) {
	router, mockService := newTestHandler(t)

	now := time.Now()
	mockService.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "editor", Password: "hunter2"}).
		Return(&models.Session{
			Token:     "session-token-value",
			UserID:    uuid.New(),
			Username:  "editor",
			CreatedAt: now,
			ExpiresAt: now.Add(time.Hour),
		}, nil)

	w := postForm(router, "/login", url.Values{
		"username": {"editor"},
		"password": {"hunter2"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, "session-token-value", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginFailureRedirectsWithoutCookie(t *testing.T) {
	router, mockService := newTestHandler(t)

	mockService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))

	w := postForm(router, "/login", url.Values{
		"username": {"editor"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginInternalFailure(t *testing.T) {
	router, mockService := newTestHandler(t)

	mockService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeInternal, "failed to store session"))

	w := postForm(router, "/login", url.Values{
		"username": {"editor"},
		"password": {"hunter2"},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router, mockService := newTestHandler(t)

	mockService.EXPECT().
		Logout(gomock.Any(), "session-token-value").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "session-token-value"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogoutWithoutSessionStillRedirects(t *testing.T) {
	router, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
