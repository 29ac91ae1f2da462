// Package requestcontext provides HTTP-independent accessors for
// request-scoped values. Middleware sets them; services read them without
// importing net/http. Tests inject fixed values (notably WithTime) so
// time-dependent logic stays deterministic.
package requestcontext

import (
	"context"
	"time"

	id "vigia/pkg/domain"
)

type (
	userIDKey      struct{}
	notaryIDKey    struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// UserID retrieves the authenticated user ID from the context.
// Returns the zero value if not set.
func UserID(ctx context.Context) id.UserID {
	if userID, ok := ctx.Value(userIDKey{}).(id.UserID); ok {
		return userID
	}
	return id.UserID{}
}

// WithUserID injects a user ID into the context.
func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// NotaryID retrieves the caller's notary office ID from the context.
func NotaryID(ctx context.Context) id.NotaryID {
	if notaryID, ok := ctx.Value(notaryIDKey{}).(id.NotaryID); ok {
		return notaryID
	}
	return id.NotaryID{}
}

// WithNotaryID injects a notary office ID into the context.
func WithNotaryID(ctx context.Context, notaryID id.NotaryID) context.Context {
	return context.WithValue(ctx, notaryIDKey{}, notaryID)
}

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from context, falling back to
// time.Now for non-HTTP contexts (workers, CLI, tests that don't care).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a fixed time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
