package analyzer

import (
	"fmt"
	"math"

	"stockvol/internal/model"
)

// Summarize renders the one-sentence reading of an analysis. Wording
// follows the overall tier; the direction word follows the sign of the
// standout day, and a flat standout day reads as losses.
func Summarize(a *model.Analysis) string {
	switch a.OverallTier {
	case model.TierStable:
		return fmt.Sprintf(
			"This stock has been relatively stable over the past %d trading days, with an average daily movement of %.2f%% and minimal price swings.",
			WindowDays, a.AvgAbsChange)
	case model.TierModerate:
		return fmt.Sprintf(
			"This stock has shown moderate volatility, averaging %.2f%% daily movement with the largest single-day change being %.2f%% in %s.",
			a.AvgAbsChange, math.Abs(a.MostVolatile.ChangePct), direction(a.MostVolatile.ChangePct))
	default:
		return fmt.Sprintf(
			"This stock has been highly volatile, with an average daily movement of %.2f%% and a significant single-day swing of %.2f%% in %s.",
			a.AvgAbsChange, math.Abs(a.MostVolatile.ChangePct), direction(a.MostVolatile.ChangePct))
	}
}

func direction(changePct float64) string {
	if changePct > 0 {
		return "gains"
	}
	return "losses"
}
