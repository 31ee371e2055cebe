package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Provider is the messaging-provider abstraction every delivery adapter must
// implement. To add a new provider (e.g., SES, SendGrid), implement this
// interface.
type Provider interface {
	// Send delivers one message. A non-nil error means delivery failed;
	// callers decide whether and how to surface that.
	Send(ctx context.Context, msg Message) error
}

// ── Stub adapter ──────────────────────────────────────────────────────────────
// Demo default: logs the send and reports success without touching the
// network, matching the storefront's simulated email behaviour.

type stubProvider struct{ logger *zap.Logger }

// NewStubProvider creates a provider that only logs.
func NewStubProvider(logger *zap.Logger) Provider {
	return &stubProvider{logger: logger}
}

func (p *stubProvider) Send(ctx context.Context, msg Message) error {
	p.logger.Info("email send simulated",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}

// ── Mailtrap adapter ──────────────────────────────────────────────────────────

type mailtrapProvider struct {
	client    *http.Client
	url       string
	token     string
	fromEmail string
	fromName  string
}

// NewMailtrapProvider creates a provider that sends through the Mailtrap
// send API. Mailtrap API docs: https://api-docs.mailtrap.io/
func NewMailtrapProvider(url, token, fromEmail, fromName string) Provider {
	return &mailtrapProvider{
		client:    &http.Client{Timeout: 15 * time.Second},
		url:       url,
		token:     token,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

type mailtrapParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailtrapPayload struct {
	From    mailtrapParty   `json:"from"`
	To      []mailtrapParty `json:"to"`
	Subject string          `json:"subject"`
	HTML    string          `json:"html"`
}

func (p *mailtrapProvider) Send(ctx context.Context, msg Message) error {
	payload := mailtrapPayload{
		From:    mailtrapParty{Email: p.fromEmail, Name: p.fromName},
		To:      []mailtrapParty{{Email: msg.To, Name: msg.ToName}},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal mailtrap payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mailtrap request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Token", p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailtrap request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mailtrap responded %d", resp.StatusCode)
	}
	return nil
}
