package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type ReportCmd struct {
	flags  *Flags
	format string
}

// NewReportCmd creates a new report command
func NewReportCmd(flags *Flags) *ReportCmd {
	return &ReportCmd{flags: flags}
}

// Register adds the report command to the application
func (cmd *ReportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "report",
		Usage:       "Print the analysis report without running an analysis",
		UsageText:   "accessihome report [options]",
		Description: "Prints the configured payload, or the built-in sample report, immediately.",
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

func (cmd *ReportCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	format, err := parseFormat(cmd.format, out)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	source, err := newSource(cmd.flags.Config)
	if err != nil {
		return err
	}
	result, err := source.Fetch(ctx, "")
	if err != nil {
		return err
	}

	return writeReport(out, format, reportDocument{Analysis: result})
}
