package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"stockvol/internal/logger"
	"stockvol/internal/model"
)

const (
	defaultBaseURL = "https://www.alphavantage.co/query"
	function       = "TIME_SERIES_DAILY"
	// compact returns the latest 100 data points, far more than one
	// analysis window needs.
	outputSize = "compact"

	seriesKey = "Time Series (Daily)"
)

// AlphaVantage implements Client against the Alpha Vantage daily
// series API.
type AlphaVantage struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAlphaVantage creates an Alpha Vantage client. An empty baseURL
// selects the public endpoint.
func NewAlphaVantage(baseURL, apiKey string, timeout time.Duration) *AlphaVantage {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &AlphaVantage{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *AlphaVantage) Name() string { return "alphavantage" }

// dailyResponse mirrors the TIME_SERIES_DAILY payload. Wire field
// names carry numbering, spaces and parentheses.
type dailyResponse struct {
	TimeSeries map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (Daily)"`
}

func (p *AlphaVantage) DailySeries(ctx context.Context, symbol string) ([]model.PricePoint, error) {
	params := url.Values{}
	params.Set("function", function)
	params.Set("symbol", symbol)
	params.Set("outputsize", outputSize)
	params.Set("apikey", p.apiKey)

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	logger.L().Debug().Str("provider", p.Name()).Str("symbol", symbol).Msg("requesting daily series")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alphavantage read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode, string(body))
	}

	// The API reports refusals inside a 200 body. Probe for the
	// sentinel fields before decoding the series.
	if msg := gjson.GetBytes(body, "Error Message"); msg.Exists() {
		return nil, &RequestError{Provider: p.Name(), Message: msg.String()}
	}
	if note := gjson.GetBytes(body, "Note"); note.Exists() {
		return nil, &RateLimitError{Provider: p.Name(), Message: note.String()}
	}

	var decoded dailyResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if len(decoded.TimeSeries) == 0 {
		return nil, fmt.Errorf("%w: no %q object", ErrMalformedPayload, seriesKey)
	}

	// ISO dates sort lexicographically; reverse puts today first.
	dates := make([]string, 0, len(decoded.TimeSeries))
	for d := range decoded.TimeSeries {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	points := make([]model.PricePoint, 0, len(dates))
	for _, d := range dates {
		c, err := strconv.ParseFloat(decoded.TimeSeries[d].Close, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: close for %s: %v", ErrMalformedPayload, d, err)
		}
		points = append(points, model.PricePoint{Date: d, Close: c})
	}

	logger.L().Debug().Str("symbol", symbol).Int("days", len(points)).Msg("daily series received")
	return points, nil
}
