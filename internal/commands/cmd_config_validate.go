package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/accessihome/internal/core/config"
	"github.com/colonyops/accessihome/internal/printer"
	"github.com/colonyops/accessihome/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// validationError is one failed config field.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResult struct {
	Valid    bool                       `json:"valid"`
	Errors   []validationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "accessihome config validate [options]",
				Description: "Validates the configuration file, checking the theme, payload file, and listing patterns.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	result := validateConfig(cmd.flags.Config, cmd.flags.ConfigPath)

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result); err != nil {
			return err
		}
	} else {
		p := printer.Ctx(ctx)
		outputSummary(p, cmd.flags.Config, cmd.flags.ConfigPath)
		outputText(p, result)
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func validateConfig(cfg *config.Config, configPath string) validationResult {
	result := validationResult{Warnings: cfg.Warnings()}

	err := cfg.ValidateDeep(configPath)
	if err == nil {
		result.Valid = true
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.Errors = []validationError{{Field: "config", Message: err.Error()}}
		return result
	}
	for _, fe := range fieldErrs {
		result.Errors = append(result.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return result
}

func outputSummary(p *printer.Printer, cfg *config.Config, configPath string) {
	const width = 8

	payload := cfg.Analysis.Payload
	if payload == "" {
		payload = "(built-in sample)"
	}
	sites := make([]string, 0, len(cfg.Listings))
	for _, l := range cfg.Listings {
		sites = append(sites, l.Name)
	}

	p.Section("Configuration")
	p.KV("file", width, configPath)
	p.KV("theme", width, cfg.Theme)
	p.KV("delay", width, cfg.Analysis.Delay.String())
	p.KV("overlap", width, cfg.Analysis.Overlap)
	p.KV("payload", width, payload)
	p.KV("listings", width, strings.Join(sites, ", "))
	p.Printf("")
}

func outputText(p *printer.Printer, result validationResult) {
	for _, warn := range result.Warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, err := range result.Errors {
		p.Errorf("%s: %s", err.Field, err.Message)
	}

	p.Printf("")
	if result.Valid {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("%d error(s) found", len(result.Errors))
}
