// Package logging defines the structured logger passed through foldervault.
// SlogLogger is the only implementation.
package logging

import "context"

// Logger takes alternating key/value args after the message:
//
//	log.Info(ctx, "folder saved", "folder_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying args on every record.
	With(args ...any) Logger
}
