package mailer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared outbound message ready for dispatch.
// Text is the primary body; HTML is an optional alternative part.
type Email struct {
	Headers     map[string]string // Custom headers
	Subject     string            // Subject line
	Text        string            // Plain text body (primary)
	HTML        string            // Optional HTML alternative
	From        string            // Sender; empty means use the configured default
	ReplyTo     string            // Reply-to address
	To          []string          // Recipients (at least one required)
	CC          []string          // Carbon copy recipients
	BCC         []string          // Blind carbon copy recipients
	Attachments []Attachment      // File attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}

// Validate checks the message invariants: a non-empty sender and at least
// one syntactically valid recipient. It performs no network I/O. Violations
// are reported joined with ErrInvalidMessage so callers can match either the
// broad class or the specific cause.
func (e *Email) Validate() error {
	var errs []error

	if strings.TrimSpace(e.From) == "" {
		errs = append(errs, ErrNoSender)
	} else if _, err := mail.ParseAddress(e.From); err != nil {
		errs = append(errs, fmt.Errorf("sender %q: %w", e.From, err))
	}

	if len(e.To) == 0 {
		errs = append(errs, ErrNoRecipient)
	}
	for _, addr := range e.Recipients() {
		if _, err := mail.ParseAddress(addr); err != nil {
			errs = append(errs, fmt.Errorf("recipient %q: %w", addr, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidMessage}, errs...)...)
	}
	return nil
}

// Recipients returns all envelope recipients (To, CC, BCC) in order.
func (e *Email) Recipients() []string {
	out := make([]string, 0, len(e.To)+len(e.CC)+len(e.BCC))
	out = append(out, e.To...)
	out = append(out, e.CC...)
	out = append(out, e.BCC...)
	return out
}
