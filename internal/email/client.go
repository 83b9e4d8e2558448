// Package email talks to the transactional mail provider.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"newsletter/internal/platform/config"
	dErrors "newsletter/pkg/domain-errors"
)

// sendRequest is the provider's wire format for a single transmission.
type sendRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// Client issues one provider API call per email with a bounded timeout. It
// never retries; callers decide whether a failed dispatch is retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sender     string
	authToken  string
	templates  *Templates
}

func NewClient(cfg config.EmailClientSettings, templates *Templates) *Client {
	sender := cfg.SenderEmail
	if cfg.SenderName != "" {
		sender = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderEmail)
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    cfg.BaseURL,
		sender:     sender,
		authToken:  cfg.AuthorizationToken,
		templates:  templates,
	}
}

// SendConfirmation emails the confirmation link to a freshly registered
// subscriber.
func (c *Client) SendConfirmation(ctx context.Context, recipient, name, confirmationLink string) error {
	htmlBody, textBody, err := c.templates.RenderConfirmation(name, confirmationLink)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to render confirmation email")
	}
	return c.send(ctx, recipient, "Welcome to our newsletter!", htmlBody, textBody)
}

// SendIssue delivers one newsletter issue to a confirmed subscriber.
func (c *Client) SendIssue(ctx context.Context, recipient, subject, htmlBody, textBody string) error {
	return c.send(ctx, recipient, subject, htmlBody, textBody)
}

func (c *Client) send(ctx context.Context, recipient, subject, htmlBody, textBody string) error {
	payload, err := json.Marshal(sendRequest{
		From:     c.sender,
		To:       recipient,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to build email request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "mail provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return dErrors.Wrap(
			fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body)),
			dErrors.CodeUnavailable,
			"mail provider rejected the email",
		)
	}
	return nil
}
