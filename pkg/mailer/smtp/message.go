package smtp

import (
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/bluelinetech/mailkit/pkg/mailer"
)

// envelopeAddress extracts the bare address from an RFC 5322 address,
// accepting both "user@host" and "Name <user@host>" forms.
func envelopeAddress(s string) (string, error) {
	parsed, err := mail.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("address %q: %w", s, err)
	}
	return parsed.Address, nil
}

// buildMessage serializes an Email into a MIME message. The plain text body
// is the primary part; HTML, when present, is added as an alternative. Bcc
// recipients appear only in the envelope, never in the transmitted headers.
func buildMessage(email *mailer.Email) *gomail.Message {
	m := gomail.NewMessage()

	m.SetHeader("From", email.From)
	m.SetHeader("To", email.To...)
	if len(email.CC) > 0 {
		m.SetHeader("Cc", email.CC...)
	}
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)
	m.SetHeader("Message-ID", messageID(email.From))
	for k, v := range email.Headers {
		m.SetHeader(k, v)
	}

	m.SetBody("text/plain", email.Text)
	if email.HTML != "" {
		m.AddAlternative("text/html", email.HTML)
	}

	for _, a := range email.Attachments {
		content := a.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		headers := map[string][]string{}
		if a.ContentType != "" {
			headers["Content-Type"] = []string{a.ContentType}
		}
		if a.ContentID != "" {
			headers["Content-ID"] = []string{"<" + a.ContentID + ">"}
		}
		if len(headers) > 0 {
			settings = append(settings, gomail.SetHeader(headers))
		}
		m.Attach(a.Filename, settings...)
	}

	return m
}

// messageID builds a unique Message-ID using the sender's domain part.
func messageID(from string) string {
	domain := "localhost"
	if parsed, err := mail.ParseAddress(from); err == nil {
		if at := strings.LastIndex(parsed.Address, "@"); at >= 0 {
			domain = parsed.Address[at+1:]
		}
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
