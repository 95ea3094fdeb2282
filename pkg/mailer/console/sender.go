// Package console provides a development mailer.Sender that writes
// messages to an io.Writer instead of delivering them. It is the
// development stand-in for the SMTP provider: the same calling code runs
// locally without a relay or credentials.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bluelinetech/mailkit/pkg/mailer"
)

// Sender writes each message to the configured writer.
type Sender struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a console sender writing to stdout.
func New() *Sender {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a console sender writing to w.
func NewWithWriter(w io.Writer) *Sender {
	return &Sender{out: w}
}

// Send implements mailer.Sender. It never fails on message content; only
// writer errors are reported.
func (s *Sender) Send(_ context.Context, email *mailer.Email) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 70) + "\n")
	fmt.Fprintf(&b, "From: %s\n", email.From)
	fmt.Fprintf(&b, "To: %s\n", strings.Join(email.To, ", "))
	if len(email.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\n", strings.Join(email.CC, ", "))
	}
	if len(email.BCC) > 0 {
		fmt.Fprintf(&b, "Bcc: %s\n", strings.Join(email.BCC, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", email.Subject)
	b.WriteString(email.Text)
	if !strings.HasSuffix(email.Text, "\n") {
		b.WriteString("\n")
	}
	for _, a := range email.Attachments {
		fmt.Fprintf(&b, "[attachment: %s, %d bytes, %s]\n", a.Filename, len(a.Content), a.ContentType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.out, b.String())
	return err
}
