package source

import (
	"context"
	"fmt"
	"time"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// SeriesFromCloses builds a daily price series from closing prices, one bar
// per day ending today. Open/high/low are derived from the close.
func SeriesFromCloses(ticker string, closes ...float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(len(closes) - i)),
			Open:   c * 0.999,
			High:   c * 1.005,
			Low:    c * 0.995,
			Close:  c,
			Volume: 1000000,
		}
	}
	return &model.PriceSeries{Ticker: ticker, Bars: bars, FetchedAt: time.Now()}
}

// MockPriceSource returns controllable fixed data for development and testing.
type MockPriceSource struct {
	Series map[string]*model.PriceSeries
	Err    error
}

func (m *MockPriceSource) PriceSeries(_ context.Context, ticker string, _ int) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	series, ok := m.Series[ticker]
	if !ok {
		return nil, fmt.Errorf("no price data for %s", ticker)
	}
	return series, nil
}

// MockNewsSource returns canned headlines per ticker.
type MockNewsSource struct {
	Items map[string][]model.Headline
	Err   error
}

func (m *MockNewsSource) Headlines(_ context.Context, ticker string) ([]model.Headline, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items[ticker], nil
}

// MockMacroSource returns a fixed macro series.
type MockMacroSource struct {
	Data model.MacroSeries
	Err  error
}

func (m *MockMacroSource) Series(_ context.Context, _ string) (model.MacroSeries, error) {
	if m.Err != nil {
		return model.MacroSeries{}, m.Err
	}
	return m.Data, nil
}
