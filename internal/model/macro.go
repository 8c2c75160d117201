package model

import "time"

// MacroPoint is a single dated observation of a macroeconomic indicator.
type MacroPoint struct {
	Date  time.Time
	Value float64
}

// MacroSeries is a time-ordered macroeconomic series (e.g. a policy rate).
// One instance is shared read-only across all tickers in an analysis batch.
// An empty series means the macro source was unavailable.
type MacroSeries struct {
	SeriesID string
	Points   []MacroPoint
}

// Len returns the number of observations.
func (m MacroSeries) Len() int { return len(m.Points) }
