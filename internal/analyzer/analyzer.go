// Package analyzer turns a raw closing-price series into a volatility
// analysis: per-day percent moves, their tiers, the averaged magnitude
// and the standout day of the window.
package analyzer

import (
	"errors"
	"fmt"
	"math"

	"stockvol/internal/calculator"
	"stockvol/internal/classifier"
	"stockvol/internal/model"
)

// WindowDays is the number of daily moves in one analysis window.
// Deriving them consumes one extra close.
const WindowDays = 5

// ErrInsufficientData means the provider returned fewer closes than the
// window needs. Freshly listed symbols and thin series end up here.
var ErrInsufficientData = errors.New("not enough trading history")

// Aggregate computes the volatility picture for one symbol from its
// closes, ordered most recent first. Exactly WindowDays+1 closes are
// consumed; older history beyond that is ignored.
func Aggregate(symbol string, points []model.PricePoint) (*model.Analysis, error) {
	need := WindowDays + 1
	if len(points) < need {
		return nil, fmt.Errorf("%w: %s has %d closes, need %d", ErrInsufficientData, symbol, len(points), need)
	}
	points = points[:need]

	// Step a: day-over-day percent moves, most recent pair first.
	changes := make([]model.DailyChange, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		pct, err := calculator.PercentChange(points[i+1].Close, points[i].Close)
		if err != nil {
			return nil, fmt.Errorf("change for %s on %s: %w", symbol, points[i].Date, err)
		}
		changes = append(changes, model.DailyChange{
			Date:      points[i].Date,
			Close:     points[i].Close,
			ChangePct: pct,
			Tier:      classifier.Classify(pct),
		})
	}

	// Step b: average magnitude across the window.
	pcts := make([]float64, len(changes))
	for i, c := range changes {
		pcts[i] = c.ChangePct
	}
	avg, err := calculator.AverageAbs(pcts)
	if err != nil {
		return nil, fmt.Errorf("average for %s: %w", symbol, err)
	}

	// Step c: standout day. Strict comparison keeps the earlier index
	// on ties, and earlier index means more recent day.
	most := changes[0]
	for _, c := range changes[1:] {
		if math.Abs(c.ChangePct) > math.Abs(most.ChangePct) {
			most = c
		}
	}

	return &model.Analysis{
		Symbol:       symbol,
		Changes:      changes,
		AvgAbsChange: avg,
		MostVolatile: most,
		OverallTier:  classifier.Classify(avg),
	}, nil
}
