package mailer

import "errors"

var (
	// ErrInvalidMessage indicates the message failed validation before any
	// network I/O was attempted.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates neither an explicit nor a default sender address
	// is available.
	ErrNoSender = errors.New("email must have a sender address")

	// ErrAuthFailed indicates the relay rejected the configured credentials.
	ErrAuthFailed = errors.New("smtp authentication failed")

	// ErrConnectionFailed indicates the relay host/port was unreachable.
	ErrConnectionFailed = errors.New("smtp connection failed")

	// ErrTLSRequired indicates STARTTLS was required but could not be
	// negotiated with the relay.
	ErrTLSRequired = errors.New("starttls negotiation failed")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrSendFailed indicates email delivery failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
