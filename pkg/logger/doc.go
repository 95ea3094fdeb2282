// Package logger provides structured logging for mail dispatch with
// context extraction and optional Sentry error reporting.
//
// It extends log/slog with a decorator that injects context-scoped
// attributes on every log call. The package ships a mail-oriented
// extractor: WithMessageID stores an outbound message id in the context
// and MessageIDExtractor surfaces it on every line logged while that
// message is being dispatched.
//
//	log := logger.New(logger.MessageIDExtractor)
//	ctx := logger.WithMessageID(ctx, "a1b2c3")
//	log.InfoContext(ctx, "email sent", slog.Int("recipients", 1))
//	// {"level":"INFO","msg":"email sent","recipients":1,"message_id":"a1b2c3"}
//
// For production error tracking use NewWithSentry; if SENTRY_DSN is empty
// it falls back to stdout-only logging, so the same code path works in
// development. NewNope returns a discard logger for tests.
package logger
