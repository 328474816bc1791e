package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "accessihome.log")

	logger, closer, err := New("debug", file)
	require.NoError(t, err)

	logger.Debug().Str("cmp", "test").Msg("hello")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"cmp":"test"`)
	assert.Contains(t, string(data), `"time":`)
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	file := filepath.Join(t.TempDir(), "accessihome.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_Level(t *testing.T) {
	logger, closer, err := New(" WARN ", "")
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	assert.Error(t, err)
}
