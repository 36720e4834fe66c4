// Package app wires the provider, analyzer and reporter into report
// runs.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"stockvol/internal/analyzer"
	"stockvol/internal/logger"
	"stockvol/internal/provider"
	"stockvol/internal/render"
)

// App holds the collaborators for producing volatility reports.
type App struct {
	Provider provider.Client
	Reporter *render.Reporter
}

// New creates an App.
func New(p provider.Client, r *render.Reporter) *App {
	return &App{Provider: p, Reporter: r}
}

// Run fetches, analyzes and reports one symbol. Every failure is
// terminal for the run; the caller decides whether to exit or wait for
// the next scheduled attempt.
func (a *App) Run(ctx context.Context, symbol string) error {
	log := logger.L().With().Str("run_id", uuid.NewString()).Logger()
	log.Info().Str("symbol", symbol).Str("provider", a.Provider.Name()).Msg("fetching data")

	points, err := a.Provider.DailySeries(ctx, symbol)
	if err != nil {
		return fmt.Errorf("fetch daily series for %s: %w", symbol, err)
	}

	analysis, err := analyzer.Aggregate(symbol, points)
	if err != nil {
		return err
	}

	if err := a.Reporter.Handle(analysis); err != nil {
		return fmt.Errorf("render report for %s: %w", symbol, err)
	}

	log.Info().
		Str("symbol", symbol).
		Str("tier", string(analysis.OverallTier)).
		Float64("avg_abs_change", analysis.AvgAbsChange).
		Msg("analysis complete")
	return nil
}
