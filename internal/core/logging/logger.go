package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with name under the "cmp" key.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// WithRequest tags ctx with an analysis request so ContextHook adds its ID,
// and its listing site when known, to events logged with that context.
func WithRequest(ctx context.Context, requestID, listing string) context.Context {
	ctx = WithRequestID(ctx, requestID)
	if listing != "" {
		ctx = WithListing(ctx, listing)
	}
	return ctx
}
