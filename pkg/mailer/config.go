package mailer

// Config holds mailer configuration.
// DefaultFrom is applied to messages that do not set an explicit sender.
type Config struct {
	DefaultFrom     string `env:"DEFAULT_FROM_EMAIL"`
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`

	// FailSilently suppresses delivery errors: they are logged and nil is
	// returned. Validation errors are never suppressed. Off by default;
	// callers must opt in explicitly.
	FailSilently bool `env:"MAILER_FAIL_SILENTLY" envDefault:"false"`
}
