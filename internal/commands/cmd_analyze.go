package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/accessihome/internal/core/analysis"
	"github.com/colonyops/accessihome/internal/core/logging"
	"github.com/colonyops/accessihome/internal/core/validate"
	"github.com/colonyops/accessihome/internal/printer"
)

type AnalyzeCmd struct {
	flags  *Flags
	format string

	// prompt asks for a URL when none is given; nil disables prompting.
	prompt func(ctx context.Context) (string, error)
}

// NewAnalyzeCmd creates a new analyze command
func NewAnalyzeCmd(flags *Flags) *AnalyzeCmd {
	cmd := &AnalyzeCmd{flags: flags}
	if isTerminal(os.Stdin) {
		cmd.prompt = promptURL
	}
	return cmd
}

// Register adds the analyze command to the application
func (cmd *AnalyzeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a listing URL and print the accessibility report",
		UsageText: "accessihome analyze [options] [url]",
		Description: `Runs the same simulated analysis as the TUI without the interface.

The URL may be given as an argument. When omitted and stdin is a terminal, you
are prompted for it. The report prints after the configured analysis delay.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (pretty, markdown, json, html); defaults to pretty on a terminal",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AnalyzeCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	out := c.Root().Writer

	format, err := parseFormat(cmd.format, out)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	url := strings.TrimSpace(c.Args().First())
	if url == "" && cmd.prompt != nil {
		url, err = cmd.prompt(ctx)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	tracker, err := newTracker(cmd.flags.Config)
	if err != nil {
		return err
	}
	analyzer, err := newAnalyzer(cmd.flags.Config, logging.Component("analysis"))
	if err != nil {
		return err
	}

	req, err := tracker.Begin(url)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyInput) {
			return cli.Exit("Please enter a valid URL", 1)
		}
		return err
	}

	if req.Listing == "" {
		p.Warnf("%s is not a recognized listing site", req.URL)
	} else {
		p.Infof("Analyzing %s listing", req.Listing)
	}

	result, err := analyzer.Analyze(ctx, req)
	if err != nil {
		tracker.Fail(req.ID, err)
		return fmt.Errorf("analyze %s: %w", req.URL, err)
	}
	tracker.Complete(req.ID, result)

	return writeReport(out, format, reportDocument{
		URL:       req.URL,
		Listing:   req.Listing,
		RequestID: req.ID,
		Analysis:  result,
	})
}

func promptURL(ctx context.Context) (string, error) {
	var url string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Listing URL").
				Description("A Zillow or Redfin property page").
				Placeholder("https://www.zillow.com/homedetails/...").
				Validate(validate.ListingURL).
				Value(&url),
		),
	).WithTheme(huh.ThemeCharm()).RunWithContext(ctx)
	return url, err
}
