// Package mail implements outbound transactional email delivery.
package mail

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chirp/config"
	"chirp/internal/domain/service"
	"chirp/internal/errors"
)

const defaultMailgunBaseURL = "https://api.mailgun.net/v3"

// mailgunMailer sends email through the Mailgun messages API.
type mailgunMailer struct {
	cfg    *config.MailgunConfig
	client *http.Client
	logger *slog.Logger
}

// NewMailgunMailer is the constructor for mailgunMailer.
// When mailgun is disabled in config the mailer only logs the message,
// which keeps local development working without credentials.
func NewMailgunMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mailgun := cfg.Mailgun
	if mailgun == nil {
		mailgun = &config.MailgunConfig{}
	}
	if mailgun.Enabled {
		if mailgun.Domain == "" || mailgun.APIKey == "" {
			return nil, errors.New("mailgun domain and api key must be provided when mailgun is enabled")
		}
	}

	return &mailgunMailer{
		cfg:    mailgun,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}, nil
}

// SendConfirmationEmail delivers the confirmation link to the recipient.
func (m *mailgunMailer) SendConfirmationEmail(ctx context.Context, to, confirmationLink string) error {
	if !m.cfg.Enabled {
		m.logger.InfoContext(ctx, "mailgun disabled, skipping confirmation email",
			slog.String("to", to),
			slog.String("link", confirmationLink),
		)

		return nil
	}

	sender := m.cfg.Sender
	if sender == "" {
		sender = "noreply@" + m.cfg.Domain
	}

	form := url.Values{}
	form.Set("from", sender)
	form.Set("to", to)
	form.Set("subject", "Please confirm your email address")
	form.Set("text", "Hi "+to+"! Please confirm your email by clicking on the following link: "+confirmationLink)

	baseURL := m.cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMailgunBaseURL
	}
	endpoint := fmt.Sprintf("%s/%s/messages", strings.TrimRight(baseURL, "/"), m.cfg.Domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to build mailgun request")
	}
	req.SetBasicAuth("api", m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call mailgun api")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("mailgun api returned status %d: %s", resp.StatusCode, string(body))
	}

	m.logger.InfoContext(ctx, "confirmation email sent", slog.String("to", to))

	return nil
}
