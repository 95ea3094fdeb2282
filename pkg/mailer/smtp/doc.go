// Package smtp implements mailer.Sender against an SMTP relay with
// STARTTLS, matching the Microsoft 365 submission setup (smtp.office365.com
// port 587, app-password auth).
//
// Each Send performs exactly one synchronous delivery attempt over its own
// connection. When Config.UseTLS is set, a relay that does not advertise
// STARTTLS causes the send to fail with mailer.ErrTLSRequired; the client
// never falls back to plaintext transmission. Rejected credentials surface
// as mailer.ErrAuthFailed, unreachable relays as mailer.ErrConnectionFailed.
//
// MIME serialization (multipart/alternative bodies, attachments, address
// headers) is handled by gopkg.in/gomail.v2; the transport itself is driven
// directly so the STARTTLS and authentication failure semantics above can
// be guaranteed.
package smtp
