package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"stockvol/internal/logger"
	"stockvol/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Yahoo implements Client using the Yahoo Finance chart API. It needs
// no credential, which makes it a handy fallback when no Alpha Vantage
// key is at hand.
type Yahoo struct {
	baseURL string
	client  *http.Client
}

// NewYahoo creates a Yahoo Finance client. An empty baseURL selects
// the public endpoint.
func NewYahoo(baseURL string, timeout time.Duration) *Yahoo {
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &Yahoo{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

func (p *Yahoo) Name() string { return "yahoo" }

// yahooChart is the response structure from the chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (p *Yahoo) DailySeries(ctx context.Context, symbol string) ([]model.PricePoint, error) {
	u := fmt.Sprintf("%s/%s?interval=1d&range=1mo", p.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	logger.L().Debug().Str("provider", p.Name()).Str("symbol", symbol).Msg("requesting daily series")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, &RequestError{Provider: p.Name(), Message: chart.Chart.Error.Description}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: empty chart result", ErrMalformedPayload)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	if len(quote.Close) != len(result.Timestamp) {
		return nil, fmt.Errorf("%w: %d closes for %d timestamps",
			ErrMalformedPayload, len(quote.Close), len(result.Timestamp))
	}

	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := toFloat(quote.Close[i])
		if c == 0 {
			continue // null bars (holidays etc.)
		}
		points = append(points, model.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: c,
		})
	}

	// Chart data arrives oldest first; the analysis wants today first.
	sort.Slice(points, func(i, j int) bool { return points[i].Date > points[j].Date })

	logger.L().Debug().Str("symbol", symbol).Int("days", len(points)).Msg("daily series received")
	return points, nil
}
