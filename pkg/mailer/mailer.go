package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	texttemplate "text/template"
)

// Mailer provides high-level email dispatch with optional template rendering.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
	log      *slog.Logger
}

// New creates a new Mailer with the given sender and renderer.
// The renderer may be nil when only SendMessage is used.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return NewWithLogger(sender, renderer, cfg, nil)
}

// NewWithLogger creates a new Mailer that logs dispatch outcomes to log.
// A nil logger disables logging.
func NewWithLogger(sender Sender, renderer *Renderer, cfg Config, log *slog.Logger) *Mailer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
		log:      log,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string // Single recipient (most common case)
	Template string // Template filename (e.g., "quote.md")
	Data     any    // Template data

	// Optional overrides
	Subject     string       // Override template subject
	Layout      string       // Override default layout
	From        string       // Override default sender
	ReplyTo     string       // Reply-to address
	CC          []string     // Carbon copy
	BCC         []string     // Blind carbon copy
	Attachments []Attachment // File attachments
}

// Send renders a template and dispatches the resulting email.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return errors.Join(ErrInvalidMessage, ErrNoRecipient)
	}
	if m.renderer == nil {
		return errors.Join(ErrRenderFailed, errors.New("no renderer configured"))
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = result.Subject
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}

	// Subject supports {{.Variable}} syntax
	processedSubject, err := m.processSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	email := &Email{
		To:          []string{params.To},
		Subject:     processedSubject,
		Text:        result.Text,
		HTML:        result.HTML,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Attachments: params.Attachments,
	}

	return m.SendMessage(ctx, email)
}

// SendMessage dispatches a pre-built email without template rendering.
// The default sender is applied to a copy when the message carries none,
// so the caller's Email is never mutated. The message is validated and
// handed to the provider for a single synchronous delivery attempt.
// Delivery errors propagate unless FailSilently is set; validation errors
// always propagate.
func (m *Mailer) SendMessage(ctx context.Context, email *Email) error {
	msg := *email
	if msg.From == "" {
		msg.From = m.config.DefaultFrom
	}

	if err := msg.Validate(); err != nil {
		return err
	}

	if err := m.sender.Send(ctx, &msg); err != nil {
		if m.config.FailSilently {
			m.log.ErrorContext(ctx, "email delivery failed, suppressed",
				slog.String("subject", msg.Subject),
				slog.Int("recipients", len(msg.Recipients())),
				slog.String("error", err.Error()))
			return nil
		}
		return errors.Join(ErrSendFailed, err)
	}

	m.log.InfoContext(ctx, "email sent",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.Recipients())))
	return nil
}

func (m *Mailer) processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
