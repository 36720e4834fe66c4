// Package scheduler triggers report runs on a cron cadence.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"stockvol/internal/app"
	"stockvol/internal/logger"
)

// Scheduler manages the recurring report job for one symbol.
type Scheduler struct {
	Cron   *cron.Cron
	App    *app.App
	Symbol string
	Ctx    context.Context
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, a *app.App, symbol string) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		App:    a,
		Symbol: symbol,
		Ctx:    ctx,
	}
}

// Register adds the report job. Expressions use six fields, seconds
// first.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.L().Info().Str("symbol", s.Symbol).Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	logger.L().Info().Msg("scheduler stopped")
}

// RunNow executes the report task immediately (for manual trigger /
// run-on-start).
func (s *Scheduler) RunNow() {
	s.reportTask()
}

// A failed scheduled run is logged and swallowed; the next tick gets a
// fresh attempt.
func (s *Scheduler) reportTask() {
	if err := s.App.Run(s.Ctx, s.Symbol); err != nil {
		logger.L().Error().Err(err).Str("symbol", s.Symbol).Msg("scheduled run failed")
	}
}
