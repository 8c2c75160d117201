package engine

import (
	"errors"
	"math"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

var (
	// ErrInsufficientData indicates fewer than two price points.
	ErrInsufficientData = errors.New("insufficient price data")
	// ErrInvalidPriceData indicates a degenerate series, e.g. a zero baseline
	// price that would make the change computation non-finite.
	ErrInvalidPriceData = errors.New("invalid price data")
)

const (
	// priceWeight scales the window price change into score points.
	priceWeight = 100.0
	// priceCap bounds the price contribution to ±50 points.
	priceCap = 50.0
	// sentimentWeight is how many score points a fully polarized
	// average sentiment is worth.
	sentimentWeight = 30.0
	// macroWeight scales the macro trend; the sign is inverted, a rising
	// indicator counts against the score.
	macroWeight = 15.0
	// volatilityThreshold is the single-day move that triggers both the
	// volatility penalty and the alert flag.
	volatilityThreshold = 0.05
	// volatilityWeight scales the triggering daily move into penalty points.
	volatilityWeight = 10.0
)

// PriceContribution converts a closing-price window into a bounded momentum
// contribution. It returns the contribution in [-50, 50] and the raw
// fractional change over the window.
func PriceContribution(closes []float64) (contribution, change float64, err error) {
	if len(closes) < 2 {
		return 0, 0, ErrInsufficientData
	}
	first := closes[0]
	if first == 0 {
		return 0, 0, ErrInvalidPriceData
	}
	change = (closes[len(closes)-1] - first) / first
	return clamp(change*priceWeight, -priceCap, priceCap), change, nil
}

// SentimentContribution averages per-headline sentiment into a single
// contribution in [-30, 30]. An empty list is not an error: it yields a
// neutral zero.
func SentimentContribution(items []model.NewsItem) (contribution, avgSentiment float64) {
	if len(items) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, n := range items {
		sum += n.SentimentScore
	}
	avgSentiment = sum / float64(len(items))
	return avgSentiment * sentimentWeight, avgSentiment
}

// MacroContribution converts the macro series trend into a signed
// contribution. Fewer than two points, or a zero baseline value, degrade to
// zero; macro unavailability must never fail a ticker's scoring.
func MacroContribution(series model.MacroSeries) float64 {
	if series.Len() < 2 {
		return 0
	}
	first := series.Points[0].Value
	if first == 0 {
		return 0
	}
	change := (series.Points[len(series.Points)-1].Value - first) / first
	return -change * macroWeight
}

// VolatilityPenalty computes the flat single-day penalty from the last two
// closes. It returns the penalty (0 unless the move exceeds the threshold)
// and the raw fractional daily change.
func VolatilityPenalty(closes []float64) (penalty, dailyChange float64, err error) {
	if len(closes) < 2 {
		return 0, 0, ErrInsufficientData
	}
	prev := closes[len(closes)-2]
	if prev == 0 {
		return 0, 0, ErrInvalidPriceData
	}
	dailyChange = (closes[len(closes)-1] - prev) / prev
	if math.Abs(dailyChange) > volatilityThreshold {
		penalty = math.Abs(dailyChange) * volatilityWeight
	}
	return penalty, dailyChange, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
