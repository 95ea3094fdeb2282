package mailkit

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bluelinetech/mailkit/pkg/logger"
	"github.com/bluelinetech/mailkit/pkg/mailer"
	"github.com/bluelinetech/mailkit/pkg/mailer/smtp"
)

// ErrMissingHost indicates no relay host is configured and no custom
// sender was provided.
var ErrMissingHost = errors.New("EMAIL_HOST is not set")

// Client is the high-level entry point: a configured Mailer bound to a
// delivery provider. Construct it once at startup and share it; it is safe
// for concurrent use.
type Client struct {
	mailer *mailer.Mailer
}

// New builds a Client from the environment configuration, wiring an SMTP
// sender by default. Options override configuration, provider, renderer,
// and logging.
func New(opts ...Option) (*Client, error) {
	s := settings{log: logger.NewNope()}
	for _, opt := range opts {
		opt(&s)
	}

	if !s.configSet {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		s.config = cfg
	}
	if s.failSilently {
		s.config.Mailer.FailSilently = true
	}

	if s.sender == nil {
		if s.config.SMTP.Host == "" {
			return nil, ErrMissingHost
		}
		s.sender = smtp.New(s.config.SMTP)
	}

	m := mailer.NewWithLogger(s.sender, s.renderer, s.config.Mailer, s.log)
	return &Client{mailer: m}, nil
}

// SendMail sends a single plain text message: the shape the host
// application uses for quote and notification mail. An empty from falls
// back to DEFAULT_FROM_EMAIL.
func (c *Client) SendMail(ctx context.Context, subject, body, from string, to []string) error {
	return c.SendMessage(ctx, &mailer.Email{
		Subject: subject,
		Text:    body,
		From:    from,
		To:      to,
	})
}

// SendMessage dispatches a pre-built message. Each dispatch is tagged with
// a message id that appears on log lines emitted while it is in flight.
func (c *Client) SendMessage(ctx context.Context, email *mailer.Email) error {
	ctx = logger.WithMessageID(ctx, uuid.NewString())
	return c.mailer.SendMessage(ctx, email)
}

// Send renders a template and dispatches the result.
func (c *Client) Send(ctx context.Context, params mailer.SendParams) error {
	ctx = logger.WithMessageID(ctx, uuid.NewString())
	return c.mailer.Send(ctx, params)
}

// SendMail loads configuration from the environment and sends a single
// plain text message in one call. Prefer constructing a Client when
// sending more than once.
func SendMail(ctx context.Context, subject, body, from string, to []string) error {
	c, err := New()
	if err != nil {
		return err
	}
	return c.SendMail(ctx, subject, body, from, to)
}
