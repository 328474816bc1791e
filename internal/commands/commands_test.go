package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/accessihome/internal/core/config"
	"github.com/colonyops/accessihome/internal/printer"
)

const zillowURL = "https://www.zillow.com/homedetails/123-main-st/1_zpid/"

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testFlags(t *testing.T) *Flags {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Analysis.Delay = 0
	cfg.DataDir = t.TempDir()
	return &Flags{Config: &cfg}
}

type result struct {
	stdout string
	status string
	err    error
}

// run executes args against a root command with cmds registered, capturing
// report output and printer status lines separately.
func run(t *testing.T, register func(*cli.Command) *cli.Command, args ...string) result {
	t.Helper()

	var stdout, status bytes.Buffer
	app := register(&cli.Command{
		Name:           "accessihome",
		Writer:         &stdout,
		ErrWriter:      io.Discard,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	})

	ctx := printer.NewContext(context.Background(), printer.New(&status))
	err := app.Run(ctx, append([]string{"accessihome"}, args...))
	return result{stdout: stdout.String(), status: status.String(), err: err}
}

func TestAnalyze_PrintsMarkdownReport(t *testing.T) {
	flags := testFlags(t)
	cmd := NewAnalyzeCmd(flags)
	cmd.prompt = nil

	res := run(t, cmd.Register, "analyze", "--format", "markdown", zillowURL)

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "# Accessibility Report")
	assert.Contains(t, res.stdout, "78 / 100")
	assert.Contains(t, res.stdout, zillowURL)
	assert.Contains(t, res.status, "Analyzing Zillow listing")
}

func TestAnalyze_JSONDocument(t *testing.T) {
	cmd := NewAnalyzeCmd(testFlags(t))
	cmd.prompt = nil

	res := run(t, cmd.Register, "analyze", "--format", "json", zillowURL)
	require.NoError(t, res.err)

	var doc struct {
		URL       string `json:"url"`
		Listing   string `json:"listing"`
		RequestID string `json:"requestId"`
		Analysis  struct {
			OverallScore int `json:"overallScore"`
			Images       []struct {
				URL string `json:"url"`
			} `json:"images"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))

	assert.Equal(t, zillowURL, doc.URL)
	assert.Equal(t, "Zillow", doc.Listing)
	assert.NotEmpty(t, doc.RequestID)
	assert.Equal(t, 78, doc.Analysis.OverallScore)
	assert.Len(t, doc.Analysis.Images, 3)
}

func TestAnalyze_UnrecognizedListingWarns(t *testing.T) {
	cmd := NewAnalyzeCmd(testFlags(t))
	cmd.prompt = nil

	res := run(t, cmd.Register, "analyze", "--format", "markdown", "https://example.com/house")

	require.NoError(t, res.err)
	assert.Contains(t, res.status, "not a recognized listing site")
	assert.Contains(t, res.stdout, "# Accessibility Report")
}

func TestAnalyze_EmptyURL(t *testing.T) {
	cmd := NewAnalyzeCmd(testFlags(t))
	cmd.prompt = nil

	res := run(t, cmd.Register, "analyze", "--format", "markdown")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "Please enter a valid URL")
	assert.Empty(t, res.stdout)
}

func TestAnalyze_PromptsForURL(t *testing.T) {
	cmd := NewAnalyzeCmd(testFlags(t))
	var prompted bool
	cmd.prompt = func(context.Context) (string, error) {
		prompted = true
		return zillowURL, nil
	}

	res := run(t, cmd.Register, "analyze", "--format", "markdown")

	require.NoError(t, res.err)
	assert.True(t, prompted)
	assert.Contains(t, res.stdout, zillowURL)
}

func TestAnalyze_UnknownFormat(t *testing.T) {
	cmd := NewAnalyzeCmd(testFlags(t))
	cmd.prompt = nil

	res := run(t, cmd.Register, "analyze", "--format", "pdf", zillowURL)

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `unknown format "pdf"`)
}

func TestAnalyze_UsesConfiguredPayload(t *testing.T) {
	flags := testFlags(t)
	payload := filepath.Join(t.TempDir(), "payload.yaml")
	require.NoError(t, os.WriteFile(payload, []byte(`
overall_score: 91
summary: Step-free throughout.
images:
  - url: https://photos.example.com/front.jpg
    annotations: []
`), 0o644))
	flags.Config.Analysis.Payload = payload

	cmd := NewAnalyzeCmd(flags)
	cmd.prompt = nil
	res := run(t, cmd.Register, "analyze", "--format", "markdown", zillowURL)

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "91 / 100")
	assert.Contains(t, res.stdout, "Step-free throughout.")
}

func TestReport_PrintsWithoutURL(t *testing.T) {
	res := run(t, NewReportCmd(testFlags(t)).Register, "report", "--format", "html")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "<h1>Accessibility Report</h1>")
	assert.Contains(t, res.stdout, "<table>")
}

func TestConfigValidate_Valid(t *testing.T) {
	res := run(t, NewConfigValidateCmd(testFlags(t)).Register, "config", "validate")

	require.NoError(t, res.err)
	assert.Contains(t, res.status, "Configuration is valid")
	assert.Contains(t, res.status, "listings  Zillow, Redfin")
	assert.Contains(t, res.status, "(built-in sample)")
	assert.Contains(t, res.status, "delay is too short", "zero delay is reported as a warning")
}

func TestConfigValidate_InvalidJSON(t *testing.T) {
	flags := testFlags(t)
	flags.Config.Theme = "solarized"
	flags.Config.Analysis.Delay = config.DefaultConfig().Analysis.Delay

	res := run(t, NewConfigValidateCmd(flags).Register, "config", "validate", "--format", "json")
	require.Error(t, res.err)

	var out validationResult
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.False(t, out.Valid)
	require.NotEmpty(t, out.Errors)
	assert.Equal(t, "theme", out.Errors[0].Field)
	assert.Empty(t, out.Warnings)
}

func TestParseFormat(t *testing.T) {
	var buf bytes.Buffer

	f, err := parseFormat("", &buf)
	require.NoError(t, err)
	assert.Equal(t, formatMarkdown, f, "non-terminal writers default to markdown")

	f, err = parseFormat(" JSON ", &buf)
	require.NoError(t, err)
	assert.Equal(t, formatJSON, f)

	_, err = parseFormat("yaml", &buf)
	assert.Error(t, err)
}
