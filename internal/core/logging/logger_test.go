package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestComponent(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("analysis")
	logger.Info().Msg("analysis complete")

	entry := decode(t, &buf)
	assert.Equal(t, "analysis", entry["cmp"])
	assert.Equal(t, "analysis complete", entry["message"])
}

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(ContextHook{})

	ctx := WithRequest(context.Background(), "req-1", "Redfin")
	logger.Info().Ctx(ctx).Msg("started")

	entry := decode(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "Redfin", entry["listing"])
}

func TestWithRequest_UnknownListing(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-2", "")

	assert.Equal(t, "req-2", GetRequestID(ctx))
	assert.Empty(t, GetListing(ctx))
}
