package mailer

import "context"

// Sender defines the minimal interface that delivery providers implement.
// It accepts a validated Email and performs a single best-effort delivery
// attempt: no retries, no queueing, no batching.
type Sender interface {
	// Send delivers an email message.
	// The Email has already been validated and has From resolved.
	// Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}
