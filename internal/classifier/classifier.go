// Package classifier maps percent moves onto volatility tiers.
//
// Bands are fixed: below 1% is Stable, 1% through 3% inclusive is
// Moderate, anything beyond is Volatile. The same bands apply to a
// single day's move and to the averaged magnitude over a window.
package classifier

import (
	"math"

	"stockvol/internal/model"
)

// Classify maps one percent change onto its tier. Only the magnitude
// counts; a -2.5% day and a +2.5% day land in the same band.
func Classify(changePct float64) model.Tier {
	abs := math.Abs(changePct)
	switch {
	case abs < 1.0:
		return model.TierStable
	case abs <= 3.0:
		return model.TierModerate
	default:
		return model.TierVolatile
	}
}
