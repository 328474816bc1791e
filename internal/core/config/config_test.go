package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, "accessihome", cfg.Theme)
	assert.Equal(t, 2*time.Second, cfg.Analysis.Delay)
	assert.Equal(t, OverlapReplace, cfg.Analysis.Overlap)
	assert.Equal(t, 55, cfg.TUI.GalleryWidth)
	assert.True(t, cfg.TUI.MouseEnabled())
	assert.Len(t, cfg.Listings, 2)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dataDir, "accessihome.log"), cfg.LogFile())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
}

func TestLoad_OverridesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeTestFile(path, `
theme: gruvbox
analysis:
  delay: 500ms
  overlap: ignore
  payload: payload.yaml
listings:
  - name: Realtor
    patterns: ["www.realtor.com/realestateandhomes-detail/**"]
tui:
  gallery_width: 40
  mouse: false
`))

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.Analysis.Delay)
	assert.Equal(t, OverlapIgnore, cfg.Analysis.Overlap)
	assert.Equal(t, filepath.Join(dir, "payload.yaml"), cfg.Analysis.Payload, "relative payload resolved against config dir")
	require.Len(t, cfg.Listings, 1, "user listings replace the defaults")
	assert.Equal(t, "Realtor", cfg.Listings[0].Name)
	assert.Equal(t, 40, cfg.TUI.GalleryWidth)
	assert.False(t, cfg.TUI.MouseEnabled())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeTestFile(path, "theme: contrast\n"))

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "contrast", cfg.Theme)
	assert.Equal(t, 2*time.Second, cfg.Analysis.Delay)
	assert.Equal(t, OverlapReplace, cfg.Analysis.Overlap)
	assert.Len(t, cfg.Listings, 2)
}

func TestLoad_AbsolutePayloadUnchanged(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(t.TempDir(), "custom.yaml")
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeTestFile(path, "analysis:\n  payload: "+payload+"\n"))

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, payload, cfg.Analysis.Payload)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeTestFile(path, "theme: [unclosed\n"))

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad overlap", "analysis:\n  overlap: queue\n", "analysis.overlap"},
		{"negative delay", "analysis:\n  delay: -1s\n", "analysis.delay"},
		{"huge delay", "analysis:\n  delay: 2h\n", "analysis.delay"},
		{"narrow gallery", "tui:\n  gallery_width: 5\n", "tui.gallery_width"},
		{"listing without name", "listings:\n  - patterns: [\"a/**\"]\n", "listings[0].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, writeTestFile(path, tt.content))

			_, err := Load(path, t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.True(t, hasField(t, err, tt.wantErr))
		})
	}
}

func TestLoad_EmptyDataDir(t *testing.T) {
	_, err := Load("", "")
	require.Error(t, err)
	assert.True(t, hasField(t, err, "data_dir"))
}
