// Package config handles configuration loading and validation for accessihome.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/accessihome/internal/core/styles"
)

// Overlap policies for analysis requests made while one is pending.
const (
	OverlapReplace = "replace"
	OverlapIgnore  = "ignore"
)

// Config holds the application configuration.
type Config struct {
	Theme    string         `yaml:"theme"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Listings []Listing      `yaml:"listings"`
	TUI      TUIConfig      `yaml:"tui"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// AnalysisConfig controls the simulated analysis.
type AnalysisConfig struct {
	// Delay is the simulated processing time before the report appears.
	Delay time.Duration `yaml:"delay"`
	// Overlap decides what a new request does while one is pending
	// (replace, ignore).
	Overlap string `yaml:"overlap"`
	// Payload is an optional YAML file replacing the built-in mock report.
	// Relative paths resolve against the config file directory.
	Payload string `yaml:"payload"`
}

// Listing names a real-estate site and the host/path globs of its listing URLs.
type Listing struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// TUIConfig holds interactive UI settings.
type TUIConfig struct {
	// GalleryWidth is the share of the screen width given to the image
	// gallery, in percent.
	GalleryWidth int `yaml:"gallery_width"`
	// Mouse enables hover via mouse motion. Defaults to true.
	Mouse *bool `yaml:"mouse"`
}

// MouseEnabled reports whether mouse hover tracking is on.
func (t TUIConfig) MouseEnabled() bool {
	return t.Mouse == nil || *t.Mouse
}

// DefaultListings recognizes the listing sites the analyzer is pitched at.
func DefaultListings() []Listing {
	return []Listing{
		{
			Name:     "Zillow",
			Patterns: []string{"www.zillow.com/homedetails/**", "zillow.com/homedetails/**"},
		},
		{
			Name:     "Redfin",
			Patterns: []string{"www.redfin.com/*/*/**", "redfin.com/*/*/**"},
		},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Analysis: AnalysisConfig{
			Delay:   2 * time.Second,
			Overlap: OverlapReplace,
		},
		Listings: DefaultListings(),
		TUI: TUIConfig{
			GalleryWidth: 55,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir

			if cfg.Analysis.Payload != "" && !filepath.IsAbs(cfg.Analysis.Payload) {
				cfg.Analysis.Payload = filepath.Join(filepath.Dir(configPath), cfg.Analysis.Payload)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Analysis.Delay == 0 {
		c.Analysis.Delay = defaults.Analysis.Delay
	}
	if c.Analysis.Overlap == "" {
		c.Analysis.Overlap = defaults.Analysis.Overlap
	}
	if c.TUI.GalleryWidth == 0 {
		c.TUI.GalleryWidth = defaults.TUI.GalleryWidth
	}
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "accessihome.log")
}
