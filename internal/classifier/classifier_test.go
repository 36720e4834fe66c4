package classifier

import (
	"testing"

	"stockvol/internal/model"
)

func TestClassify_AllBoundaries(t *testing.T) {
	tests := []struct {
		changePct float64
		tier      model.Tier
	}{
		{0, model.TierStable},
		{0.5, model.TierStable},
		{0.999999, model.TierStable},
		{1.0, model.TierModerate},
		{1.81, model.TierModerate},
		{2.999999, model.TierModerate},
		{3.0, model.TierModerate},
		{3.000001, model.TierVolatile},
		{7.25, model.TierVolatile},
	}
	for _, tt := range tests {
		if got := Classify(tt.changePct); got != tt.tier {
			t.Errorf("change %+.6f%%: expected %s, got %s", tt.changePct, tt.tier, got)
		}
	}
}

func TestClassify_SignIsIgnored(t *testing.T) {
	for _, pct := range []float64{0.4, 1.0, 2.5, 3.0, 4.8} {
		pos := Classify(pct)
		neg := Classify(-pct)
		if pos != neg {
			t.Errorf("change %.2f%%: tier %s for gain but %s for loss", pct, pos, neg)
		}
	}
}
