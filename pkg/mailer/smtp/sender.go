package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"

	"github.com/bluelinetech/mailkit/pkg/mailer"
)

// Sender implements mailer.Sender against an SMTP relay using the
// submission flow: connect, EHLO, optional STARTTLS, optional AUTH,
// MAIL/RCPT/DATA, QUIT. Each Send opens its own connection and closes it on
// every exit path.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender. It performs a single synchronous delivery
// attempt and maps relay failures onto the mailer error taxonomy:
// mailer.ErrConnectionFailed, mailer.ErrTLSRequired, mailer.ErrAuthFailed.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	dialer := net.Dialer{Timeout: s.config.timeout()}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Join(mailer.ErrConnectionFailed, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		conn.Close()
		return errors.Join(mailer.ErrConnectionFailed, err)
	}
	// Close releases the connection whenever the happy-path QUIT below is
	// not reached. After a successful QUIT it is a no-op error we ignore.
	defer client.Close()

	if s.config.LocalName != "" {
		if err := client.Hello(s.config.LocalName); err != nil {
			return errors.Join(mailer.ErrConnectionFailed, err)
		}
	}

	if s.config.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return fmt.Errorf("%w: relay %s does not advertise STARTTLS", mailer.ErrTLSRequired, s.config.Host)
		}
		tlsCfg := s.config.TLSConfig
		if tlsCfg == nil {
			tlsCfg = &tls.Config{ServerName: s.config.Host}
		}
		if err := client.StartTLS(tlsCfg); err != nil {
			return errors.Join(mailer.ErrTLSRequired, err)
		}
	}

	if s.config.Username != "" {
		if ok, _ := client.Extension("AUTH"); !ok {
			return fmt.Errorf("%w: relay %s does not advertise AUTH", mailer.ErrAuthFailed, s.config.Host)
		}
		auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Join(mailer.ErrAuthFailed, err)
		}
	}

	from, err := envelopeAddress(email.From)
	if err != nil {
		return errors.Join(mailer.ErrInvalidMessage, err)
	}
	if err := client.Mail(from); err != nil {
		return s.classify(err)
	}
	for _, rcpt := range email.Recipients() {
		rcptAddr, err := envelopeAddress(rcpt)
		if err != nil {
			return errors.Join(mailer.ErrInvalidMessage, err)
		}
		if err := client.Rcpt(rcptAddr); err != nil {
			return s.classify(err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return s.classify(err)
	}
	msg := buildMessage(email)
	if _, err := msg.WriteTo(w); err != nil {
		w.Close()
		return errors.Join(mailer.ErrSendFailed, err)
	}
	if err := w.Close(); err != nil {
		return s.classify(err)
	}

	// The relay accepted the message when DATA completed; a failed QUIT
	// must not be reported as a delivery failure. Close still runs via the
	// deferred call.
	_ = client.Quit()
	return nil
}

// classify maps SMTP reply codes onto the mailer error taxonomy. Codes per
// RFC 4954 (auth) and RFC 3207 (STARTTLS).
func (s *Sender) classify(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535, 538:
			return errors.Join(mailer.ErrAuthFailed, err)
		case 454:
			return errors.Join(mailer.ErrTLSRequired, err)
		}
		return errors.Join(mailer.ErrSendFailed, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Join(mailer.ErrConnectionFailed, err)
	}
	return errors.Join(mailer.ErrSendFailed, err)
}
