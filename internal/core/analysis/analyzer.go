package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/accessihome/internal/core/logging"
	"github.com/colonyops/accessihome/internal/core/report"
)

// DefaultDelay is the simulated analysis latency.
const DefaultDelay = 2 * time.Second

// Analyzer delivers an analysis after a fixed delay.
type Analyzer struct {
	source report.Source
	delay  time.Duration
	log    zerolog.Logger
}

// NewAnalyzer creates an analyzer reading payloads from source.
func NewAnalyzer(source report.Source, delay time.Duration, log zerolog.Logger) *Analyzer {
	if delay < 0 {
		delay = 0
	}
	return &Analyzer{
		source: source,
		delay:  delay,
		log:    log,
	}
}

// Delay returns the simulated latency.
func (a *Analyzer) Delay() time.Duration {
	return a.delay
}

// Analyze waits for the simulated delay and returns the payload for req.
// Cancelling ctx stops the timer and returns the context error.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*report.Analysis, error) {
	ctx = logging.WithRequest(ctx, req.ID, req.Listing)

	a.log.Debug().Ctx(ctx).
		Str("url", req.URL).
		Dur("delay", a.delay).
		Msg("analysis started")

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		a.log.Debug().Ctx(ctx).Msg("analysis cancelled")
		return nil, ctx.Err()
	case <-timer.C:
	}

	result, err := a.source.Fetch(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch analysis: %w", err)
	}

	a.log.Info().Ctx(ctx).
		Int("score", result.OverallScore).
		Int("images", len(result.Images)).
		Msg("analysis complete")

	return result, nil
}
