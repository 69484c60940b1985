package core

import (
	"context"
	"time"
)

// Context keys for run options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	clockKey          contextKey = "clock"
)

// WithSuppressHeader marks the context so that no summary lines are written to stderr.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	suppress, ok := ctx.Value(suppressHeaderKey).(bool)
	return ok && suppress
}

// WithClock fixes the current time seen by the run, for reproducible output.
func WithClock(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, clockKey, now)
}

// Now returns the clock stored in ctx, or the wall clock.
func Now(ctx context.Context) time.Time {
	if now, ok := ctx.Value(clockKey).(time.Time); ok {
		return now
	}
	return time.Now()
}
