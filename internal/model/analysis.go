package model

// Tier labels the magnitude of a price move.
type Tier string

const (
	TierStable   Tier = "Stable"
	TierModerate Tier = "Moderate"
	TierVolatile Tier = "Volatile"
)

// Analysis is the outcome of one report run over the trailing window:
// the per-day changes (most recent first) plus the statistics derived
// from them.
type Analysis struct {
	Symbol       string
	Changes      []DailyChange
	AvgAbsChange float64
	MostVolatile DailyChange
	OverallTier  Tier
}

// PeriodStart returns the oldest change date in the window.
func (a *Analysis) PeriodStart() string {
	if len(a.Changes) == 0 {
		return ""
	}
	return a.Changes[len(a.Changes)-1].Date
}

// PeriodEnd returns the most recent change date in the window.
func (a *Analysis) PeriodEnd() string {
	if len(a.Changes) == 0 {
		return ""
	}
	return a.Changes[0].Date
}

// CurrentPrice returns the most recent closing price in the window.
func (a *Analysis) CurrentPrice() float64 {
	if len(a.Changes) == 0 {
		return 0
	}
	return a.Changes[0].Close
}
