package source

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// newBreaker builds a circuit breaker tuned for flaky public market feeds:
// trip after 3 consecutive failures, or a >5% failure rate once warmed up.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	st := gobreaker.Settings{Name: name}
	st.Interval = 60 * time.Second
	st.Timeout = 60 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		if counts.ConsecutiveFailures >= 3 {
			return true
		}
		if counts.Requests < 20 {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) > 0.05
	}
	return gobreaker.NewCircuitBreaker(st)
}

// priceFetcher matches the engine's PriceSource interface.
type priceFetcher interface {
	PriceSeries(ctx context.Context, ticker string, days int) (*model.PriceSeries, error)
}

// newsFetcher matches the engine's NewsSource interface.
type newsFetcher interface {
	Headlines(ctx context.Context, ticker string) ([]model.Headline, error)
}

// BreakerPriceSource wraps a price source in a circuit breaker so a
// flapping feed trips open instead of stalling every request on timeouts.
type BreakerPriceSource struct {
	inner priceFetcher
	cb    *gobreaker.CircuitBreaker
}

// WithPriceBreaker wraps a price source in a circuit breaker.
func WithPriceBreaker(inner priceFetcher) *BreakerPriceSource {
	return &BreakerPriceSource{inner: inner, cb: newBreaker("price")}
}

func (b *BreakerPriceSource) PriceSeries(ctx context.Context, ticker string, days int) (*model.PriceSeries, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.PriceSeries(ctx, ticker, days)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.PriceSeries), nil
}

// BreakerNewsSource wraps a news source in a circuit breaker.
type BreakerNewsSource struct {
	inner newsFetcher
	cb    *gobreaker.CircuitBreaker
}

// WithNewsBreaker wraps a news source in a circuit breaker.
func WithNewsBreaker(inner newsFetcher) *BreakerNewsSource {
	return &BreakerNewsSource{inner: inner, cb: newBreaker("news")}
}

func (b *BreakerNewsSource) Headlines(ctx context.Context, ticker string) ([]model.Headline, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Headlines(ctx, ticker)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Headline), nil
}
