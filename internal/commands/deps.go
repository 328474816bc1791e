package commands

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/accessihome/internal/core/analysis"
	"github.com/colonyops/accessihome/internal/core/config"
	"github.com/colonyops/accessihome/internal/core/report"
)

// newSource returns the report source for cfg: the configured payload file,
// or the built-in mock report.
func newSource(cfg *config.Config) (report.Source, error) {
	if cfg.Analysis.Payload == "" {
		return report.NewMockSource(), nil
	}

	payload, err := report.Load(cfg.Analysis.Payload)
	if err != nil {
		return nil, fmt.Errorf("load payload: %w", err)
	}
	return report.NewStaticSource(payload), nil
}

func newAnalyzer(cfg *config.Config, log zerolog.Logger) (*analysis.Analyzer, error) {
	source, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	return analysis.NewAnalyzer(source, cfg.Analysis.Delay, log), nil
}

func newTracker(cfg *config.Config) (*analysis.Tracker, error) {
	sites := make([]analysis.ListingSite, 0, len(cfg.Listings))
	for _, l := range cfg.Listings {
		sites = append(sites, analysis.ListingSite{Name: l.Name, Patterns: l.Patterns})
	}

	matcher, err := analysis.NewListingMatcher(sites)
	if err != nil {
		return nil, fmt.Errorf("listing patterns: %w", err)
	}
	return analysis.NewTracker(analysis.OverlapPolicy(cfg.Analysis.Overlap), matcher), nil
}
