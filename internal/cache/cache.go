// Package cache provides an optional TTL cache for upstream feed payloads,
// so repeated dashboard refreshes do not hammer the market data providers.
// Computed scores are never cached or persisted.
package cache

import "github.com/amritsharan/credit-dashboard-hackathon/internal/model"

// Store caches fetched price series keyed by ticker and window length.
type Store interface {
	GetPrices(ticker string, days int) (*model.PriceSeries, bool)
	PutPrices(series *model.PriceSeries, days int) error
	Close() error
}

// NoopStore is used when no cache is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) GetPrices(_ string, _ int) (*model.PriceSeries, bool) { return nil, false }
func (n *NoopStore) PutPrices(_ *model.PriceSeries, _ int) error          { return nil }
func (n *NoopStore) Close() error                                         { return nil }
