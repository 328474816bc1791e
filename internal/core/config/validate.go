package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/accessihome/internal/core/report"
	"github.com/colonyops/accessihome/internal/core/styles"
)

// maxDelay caps analysis.delay.
const maxDelay = time.Minute

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, notEmpty),
		fieldErr("analysis.delay", validDelay(c.Analysis.Delay)),
		criterio.Run("analysis.overlap", c.Analysis.Overlap, validOverlap),
		fieldErr("tui.gallery_width", validGalleryWidth(c.TUI.GalleryWidth)),
		c.validateListings(),
	)
}

// ValidateDeep performs comprehensive validation of the configuration including
// theme names, glob patterns, and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("analysis.payload", c.Analysis.Payload, loadablePayload),
		c.validatePatterns(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if len(c.Listings) == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Listings",
			Message:  "no listing sites configured; every URL is reported as unrecognized",
		})
	}

	for i, l := range c.Listings {
		if len(l.Patterns) == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Listings",
				Item:     fmt.Sprintf("listing %d (%s)", i, l.Name),
				Message:  "listing has no patterns and never matches",
			})
		}
	}

	if c.Analysis.Delay < 200*time.Millisecond {
		warnings = append(warnings, ValidationWarning{
			Category: "Analysis",
			Item:     "delay",
			Message:  "delay is too short for the loading state to be visible",
		})
	}

	return warnings
}

// fieldErr attaches field to err for non-string values.
func fieldErr(field string, err error) error {
	if err == nil {
		return nil
	}
	return criterio.NewFieldErrors(field, err)
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func validDelay(d time.Duration) error {
	if d < 0 {
		return errors.New("cannot be negative")
	}
	if d > maxDelay {
		return fmt.Errorf("must be at most %s", maxDelay)
	}
	return nil
}

func validOverlap(s string) error {
	switch s {
	case OverlapReplace, OverlapIgnore:
		return nil
	default:
		return fmt.Errorf("invalid policy %q (want %s or %s)", s, OverlapReplace, OverlapIgnore)
	}
}

func validGalleryWidth(w int) error {
	if w < 20 || w > 80 {
		return fmt.Errorf("must be between 20 and 80, got %d", w)
	}
	return nil
}

func (c *Config) validateListings() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool, len(c.Listings))

	for i, l := range c.Listings {
		field := fmt.Sprintf("listings[%d].name", i)
		name := strings.TrimSpace(l.Name)
		switch {
		case name == "":
			errs = errs.Append(field, errors.New("name is required"))
		case seen[strings.ToLower(name)]:
			errs = errs.Append(field, fmt.Errorf("duplicate listing name %q", name))
		}
		seen[strings.ToLower(name)] = true
	}

	return errs.ToError()
}

func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, l := range c.Listings {
		for j, p := range l.Patterns {
			if !doublestar.ValidatePattern(p) {
				errs = errs.Append(fmt.Sprintf("listings[%d].patterns[%d]", i, j), fmt.Errorf("invalid glob %q", p))
			}
		}
	}
	return errs.ToError()
}

// validateFileAccess checks the config file and data directory.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); ok {
		return nil
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
}

func loadablePayload(path string) error {
	if path == "" {
		return nil
	}
	a, err := report.Load(path)
	if err != nil {
		return err
	}
	if len(a.Images) == 0 {
		return errors.New("payload has no images; the gallery will be empty")
	}
	if slices.ContainsFunc(a.Images, func(img report.Image) bool { return img.URL == "" }) {
		return errors.New("payload has an image without a url")
	}
	return nil
}
