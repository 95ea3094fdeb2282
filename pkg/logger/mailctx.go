package logger

import (
	"context"
	"log/slog"
)

type ctxKey int

const messageIDKey ctxKey = iota

// WithMessageID stores the outbound message id in the context so it appears
// on every log line emitted while dispatching that message.
func WithMessageID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, messageIDKey, id)
}

// MessageIDExtractor extracts the message id stored with WithMessageID.
func MessageIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(messageIDKey).(string); ok && id != "" {
		return slog.String("message_id", id), true
	}
	return slog.Attr{}, false
}
