// Package provider fetches daily closing-price series from market data
// APIs.
package provider

import (
	"context"
	"errors"
	"fmt"

	"stockvol/internal/model"
)

// Client defines the interface for fetching a symbol's recent daily
// closes. Implementations return the series most recent day first.
type Client interface {
	DailySeries(ctx context.Context, symbol string) ([]model.PricePoint, error)
	Name() string
}

// ErrMalformedPayload means the provider answered 200 with a body that
// carries neither a price series nor a recognizable refusal.
var ErrMalformedPayload = errors.New("malformed provider payload")

// RequestError is the provider's explicit refusal of a request, most
// commonly an unknown symbol or a bad API key.
type RequestError struct {
	Provider string
	Message  string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s rejected the request: %s", e.Provider, e.Message)
}

// RateLimitError is the provider's throttle notice. The free Alpha
// Vantage tier allows a handful of calls per minute.
type RateLimitError struct {
	Provider string
	Message  string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited the request: %s", e.Provider, e.Message)
}
