// Package logger provides structured logging for pagetoken tools.
package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	loggerKey  contextKey = "pagetoken.logger"
	commandKey contextKey = "pagetoken.command"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithCommand records the running CLI command name.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// CommandFromContext extracts the command name from context.
func CommandFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// L is a shorthand for FromContext that also adds the command name.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if cmd := CommandFromContext(ctx); cmd != "" {
		l = l.With("command", cmd)
	}
	return l
}
