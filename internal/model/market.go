package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the trailing daily price window for one ticker.
// Bars are chronological: index 0 is the oldest observation.
type PriceSeries struct {
	Ticker    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Closes returns the closing prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the most recent closing price, or 0 if the series is empty.
func (s *PriceSeries) LastClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}

// Len returns the number of bars in the series.
func (s *PriceSeries) Len() int { return len(s.Bars) }
