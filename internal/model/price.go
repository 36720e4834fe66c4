package model

// PricePoint is one trading day's closing price as supplied by the market
// data provider. Date is the provider's ISO calendar date (2006-01-02).
type PricePoint struct {
	Date  string
	Close float64
}

// DailyChange is the day-over-day move derived from two adjacent
// PricePoints. Date and Close belong to the later day of the pair.
type DailyChange struct {
	Date      string
	Close     float64
	ChangePct float64
	Tier      Tier
}
