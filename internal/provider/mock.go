package provider

import (
	"context"
	"time"

	"stockvol/internal/model"
)

// MockClient returns controllable fixed data for development and
// testing.
type MockClient struct {
	Series []model.PricePoint
	Err    error
}

func (m *MockClient) Name() string { return "mock" }

func (m *MockClient) DailySeries(_ context.Context, _ string) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return generateMockSeries(100, 6), nil
}

func generateMockSeries(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	now := time.Now()
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Date:  now.AddDate(0, 0, -i).Format("2006-01-02"),
			Close: basePrice * (1 + float64(count/2-i)*0.001),
		}
	}
	return points
}
