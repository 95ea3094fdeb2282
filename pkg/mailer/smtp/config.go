package smtp

import (
	"crypto/tls"
	"time"
)

// Config holds SMTP relay configuration. Values are fixed at construction
// time; the sender never mutates them after load.
type Config struct {
	// Host is the relay hostname, e.g. "smtp.office365.com".
	Host string `env:"EMAIL_HOST"`

	// Port is the submission port. 587 is the STARTTLS submission port.
	Port int `env:"EMAIL_PORT" envDefault:"587"`

	// UseTLS requires STARTTLS before authentication and transmission.
	// When set and the relay does not support STARTTLS, sending fails;
	// there is no plaintext fallback.
	UseTLS bool `env:"EMAIL_USE_TLS" envDefault:"true"`

	// Username and Password authenticate against the relay. Leave both
	// empty for unauthenticated relays. For Microsoft 365 the password is
	// an app password, not the mailbox login password.
	Username string `env:"EMAIL_HOST_USER"`
	Password string `env:"EMAIL_HOST_PASSWORD"`

	// TLSConfig overrides the TLS client configuration used for STARTTLS.
	// When nil, a config with ServerName set to Host is used.
	TLSConfig *tls.Config

	// Timeout bounds the TCP dial. Defaults to 10 seconds.
	Timeout time.Duration

	// LocalName is the hostname sent in EHLO. Defaults to "localhost".
	LocalName string
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return 10 * time.Second
}
