package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter/internal/platform/config"
	dErrors "newsletter/pkg/domain-errors"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	templates, err := NewTemplates()
	require.NoError(t, err)
	return NewClient(config.EmailClientSettings{
		BaseURL:            baseURL,
		SenderEmail:        "newsletter@example.com",
		AuthorizationToken: "secret-token",
		TimeoutSeconds:     2,
	}, templates)
}

func TestSendConfirmation(t *testing.T) {
	var captured sendRequest
	var gotPath, gotToken, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Postmark-Server-Token")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.SendConfirmation(
		context.Background(),
		"ursula@example.com",
		"Ursula",
		"https://newsletter.example.com/subscriptions/confirm?subscription_token=tok",
	)
	require.NoError(t, err)

	assert.Equal(t, "/email", gotPath)
	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "newsletter@example.com", captured.From)
	assert.Equal(t, "ursula@example.com", captured.To)
	assert.Contains(t, captured.HTMLBody, "Ursula")
	assert.Contains(t, captured.HTMLBody, "subscription_token=tok")
	assert.Contains(t, captured.TextBody, "subscription_token=tok")
	assert.NotEmpty(t, captured.Subject)
}

func TestSendConfirmationProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"ErrorCode":405}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.SendConfirmation(context.Background(), "ursula@example.com", "Ursula", "https://example.com/confirm")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func TestSendConfirmationTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(t, server.URL)
	err := client.SendConfirmation(context.Background(), "ursula@example.com", "Ursula", "https://example.com/confirm")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func TestSendIssue(t *testing.T) {
	var captured sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.SendIssue(
		context.Background(),
		"reader@example.com",
		"Issue #1",
		"<p>content</p>",
		"content",
	)
	require.NoError(t, err)
	assert.Equal(t, "Issue #1", captured.Subject)
	assert.Equal(t, "<p>content</p>", captured.HTMLBody)
	assert.Equal(t, "content", captured.TextBody)
}
