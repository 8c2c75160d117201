package source

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/cache"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// CachedPriceSource serves price series from the cache store when fresh,
// falling back to the inner source and writing through on success.
type CachedPriceSource struct {
	inner priceFetcher
	store cache.Store
}

// NewCachedPriceSource wraps a price source with the given cache store.
func NewCachedPriceSource(inner priceFetcher, store cache.Store) *CachedPriceSource {
	return &CachedPriceSource{inner: inner, store: store}
}

func (c *CachedPriceSource) PriceSeries(ctx context.Context, ticker string, days int) (*model.PriceSeries, error) {
	if series, ok := c.store.GetPrices(ticker, days); ok {
		return series, nil
	}
	series, err := c.inner.PriceSeries(ctx, ticker, days)
	if err != nil {
		return nil, err
	}
	if err := c.store.PutPrices(series, days); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("price cache write failed")
	}
	return series, nil
}
