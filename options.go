package mailkit

import (
	"log/slog"

	"github.com/bluelinetech/mailkit/pkg/mailer"
)

type settings struct {
	config       Config
	configSet    bool
	failSilently bool
	sender       mailer.Sender
	renderer     *mailer.Renderer
	log          *slog.Logger
}

// Option configures the Client.
type Option func(*settings)

// WithConfig replaces the environment-sourced configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.config = cfg
		s.configSet = true
	}
}

// WithSender sets a custom delivery provider instead of the SMTP sender
// built from configuration.
func WithSender(sender mailer.Sender) Option {
	return func(s *settings) {
		if sender != nil {
			s.sender = sender
		}
	}
}

// WithRenderer enables templated sending via Client.Send.
func WithRenderer(r *mailer.Renderer) Option {
	return func(s *settings) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets the dispatch logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFailSilently suppresses delivery errors: they are logged and nil is
// returned to the caller. Validation errors still propagate.
func WithFailSilently() Option {
	return func(s *settings) {
		s.failSilently = true
	}
}
