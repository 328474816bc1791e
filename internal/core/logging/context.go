package logging

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	listingKey   contextKey = "listing"
)

// WithRequestID adds an analysis request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithListing adds the recognized listing site to the context.
func WithListing(ctx context.Context, listing string) context.Context {
	return context.WithValue(ctx, listingKey, listing)
}

// GetRequestID retrieves the request ID from the context.
// Returns empty string if not present.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetListing retrieves the listing site from the context.
// Returns empty string if not present.
func GetListing(ctx context.Context) string {
	if l, ok := ctx.Value(listingKey).(string); ok {
		return l
	}
	return ""
}
