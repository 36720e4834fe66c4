package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyPayload = `{
  "Meta Data": {
    "1. Information": "Daily Prices (open, high, low, close) and Volumes",
    "2. Symbol": "IBM",
    "3. Last Refreshed": "2026-08-21",
    "4. Output Size": "Compact",
    "5. Time Zone": "US/Eastern"
  },
  "Time Series (Daily)": {
    "2026-08-18": {
      "1. open": "221.5000", "2. high": "224.1000", "3. low": "220.9000",
      "4. close": "223.0000", "5. volume": "3598231"
    },
    "2026-08-21": {
      "1. open": "224.0000", "2. high": "226.9000", "3. low": "223.7000",
      "4. close": "226.1300", "5. volume": "4127554"
    },
    "2026-08-13": {
      "1. open": "219.9000", "2. high": "221.3000", "3. low": "218.5000",
      "4. close": "220.4000", "5. volume": "2981440"
    },
    "2026-08-20": {
      "1. open": "221.8000", "2. high": "225.0000", "3. low": "221.0000",
      "4. close": "224.5000", "5. volume": "3804112"
    },
    "2026-08-19": {
      "1. open": "223.2000", "2. high": "223.9000", "3. low": "220.4000",
      "4. close": "221.2000", "5. volume": "3312067"
    },
    "2026-08-17": {
      "1. open": "219.5000", "2. high": "222.6000", "3. low": "219.1000",
      "4. close": "222.1000", "5. volume": "2754903"
    },
    "2026-08-14": {
      "1. open": "220.7000", "2. high": "221.0000", "3. low": "218.9000",
      "4. close": "219.8000", "5. volume": "2644871"
    }
  }
}`

func TestDailySeries_ParsesAndOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "TIME_SERIES_DAILY", q.Get("function"))
		assert.Equal(t, "IBM", q.Get("symbol"))
		assert.Equal(t, "compact", q.Get("outputsize"))
		assert.Equal(t, "demo-key", q.Get("apikey"))
		fmt.Fprint(w, dailyPayload)
	}))
	defer srv.Close()

	p := NewAlphaVantage(srv.URL, "demo-key", 5*time.Second)
	points, err := p.DailySeries(context.Background(), "IBM")
	require.NoError(t, err)
	require.Len(t, points, 7)

	wantDates := []string{
		"2026-08-21", "2026-08-20", "2026-08-19", "2026-08-18",
		"2026-08-17", "2026-08-14", "2026-08-13",
	}
	for i, d := range wantDates {
		assert.Equal(t, d, points[i].Date, "position %d", i)
	}
	assert.InDelta(t, 226.13, points[0].Close, 1e-9)
	assert.InDelta(t, 220.40, points[6].Close, 1e-9)
}

func TestDailySeries_APIRefusals(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "error message sentinel",
			payload: `{"Error Message": "Invalid API call. Please retry or visit the documentation for TIME_SERIES_DAILY."}`,
			check: func(t *testing.T, err error) {
				var reqErr *RequestError
				require.ErrorAs(t, err, &reqErr)
				assert.Equal(t, "alphavantage", reqErr.Provider)
				assert.Contains(t, reqErr.Message, "Invalid API call")
			},
		},
		{
			name:    "rate limit note",
			payload: `{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`,
			check: func(t *testing.T, err error) {
				var rlErr *RateLimitError
				require.ErrorAs(t, err, &rlErr)
				assert.Contains(t, rlErr.Message, "rate limit")
			},
		},
		{
			name:    "series object missing",
			payload: `{"Meta Data": {"2. Symbol": "IBM"}}`,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrMalformedPayload)
			},
		},
		{
			name:    "unparseable close",
			payload: `{"Time Series (Daily)": {"2026-08-21": {"4. close": "n/a"}}}`,
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrMalformedPayload)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, tt.payload)
			}))
			defer srv.Close()

			p := NewAlphaVantage(srv.URL, "demo-key", 5*time.Second)
			_, err := p.DailySeries(context.Background(), "IBM")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestDailySeries_HTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewAlphaVantage(srv.URL, "demo-key", 5*time.Second)
	_, err := p.DailySeries(context.Background(), "IBM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestDailySeries_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	p := NewAlphaVantage(srv.URL, "demo-key", time.Second)
	_, err := p.DailySeries(context.Background(), "IBM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alphavantage fetch")
}

func TestDailySeries_HonorsContext(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	p := NewAlphaVantage(srv.URL, "demo-key", 5*time.Second)
	_, err := p.DailySeries(ctx, "IBM")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
