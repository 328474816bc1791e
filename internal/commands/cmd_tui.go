package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/accessihome/internal/core/logging"
	"github.com/colonyops/accessihome/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	url   string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Usage:       "listing URL to analyze on launch",
			Sources:     cli.EnvVars("ACCESSIHOME_URL"),
			Destination: &cmd.url,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config
	logger := logging.Component("tui")

	analyzer, err := newAnalyzer(cfg, logging.Component("analysis"))
	if err != nil {
		return err
	}
	tracker, err := newTracker(cfg)
	if err != nil {
		return err
	}

	var warnings []string
	for _, w := range cfg.Warnings() {
		warnings = append(warnings, w.Message)
	}

	m := tui.New(tui.Options{
		Analyzer:     analyzer,
		Tracker:      tracker,
		InitialURL:   cmd.url,
		GalleryWidth: cfg.TUI.GalleryWidth,
		Mouse:        cfg.TUI.MouseEnabled(),
		Logger:       logger,
		Warnings:     warnings,
	})

	logger.Info().Str("url", cmd.url).Msg("starting tui")
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
