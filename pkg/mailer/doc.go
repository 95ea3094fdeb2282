// Package mailer provides outbound email dispatch with template rendering.
//
// The package separates delivery (via providers) from message construction
// and template rendering, so the transport can be swapped (SMTP relay, HTTP
// API, console) without touching calling code.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Sender: interface that delivery providers implement
//   - Renderer: converts markdown templates with YAML frontmatter into a
//     plain text body plus an HTML alternative
//   - Mailer: high-level client combining Sender and Renderer
//
// # Usage
//
// Basic usage with the SMTP provider:
//
//	import (
//		"context"
//
//		"github.com/bluelinetech/mailkit/pkg/mailer"
//		"github.com/bluelinetech/mailkit/pkg/mailer/smtp"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		sender := smtp.New(smtp.Config{
//			Host:     "smtp.office365.com",
//			Port:     587,
//			UseTLS:   true,
//			Username: "bids@bluelinetech.org",
//			Password: os.Getenv("EMAIL_HOST_PASSWORD"),
//		})
//
//		m := mailer.New(sender, mailer.NewRenderer(emails.FS), mailer.Config{
//			DefaultFrom: "bids@bluelinetech.org",
//		})
//
//		err := m.SendMessage(ctx, &mailer.Email{
//			To:      []string{"customer@example.com"},
//			Subject: "Service Quote #2041",
//			Text:    "Please find attached our service quote for your review.",
//		})
//		if err != nil {
//			panic(err)
//		}
//	}
//
// # Dispatch Semantics
//
// SendMessage performs exactly one synchronous delivery attempt per call:
// no retries, no queueing, no batching. The provider opens its own
// connection and closes it on every exit path. Messages missing a sender or
// recipients fail with ErrInvalidMessage before any network I/O.
//
// Delivery failures propagate to the caller. Setting Config.FailSilently
// suppresses them (they are still logged); validation errors are never
// suppressed.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Quote {{.BidNumber}} from Blue Line Technologies
//	---
//
//	Dear {{.CustomerName}},
//
//	Please find attached our service quote #{{.BidNumber}} for your review.
//
// The processed markdown becomes the plain text body; the HTML alternative
// is produced with goldmark, sanitized, and wrapped in a layout. Subject
// fields support Go template syntax for dynamic values, and bodies have the
// sprig function map available.
//
// # Errors
//
// The package defines sentinel errors for the delivery failure taxonomy:
//
//   - ErrInvalidMessage: missing or malformed sender/recipients
//   - ErrAuthFailed: relay rejected the credentials
//   - ErrConnectionFailed: relay host/port unreachable
//   - ErrTLSRequired: STARTTLS required but not negotiated
//   - ErrSendFailed: generic delivery failure wrapper
//
// plus ErrTemplateNotFound, ErrLayoutNotFound, ErrRenderFailed, and
// ErrInvalidFrontmatter for the rendering pipeline. All are matchable with
// errors.Is through wrapped chains.
package mailer
