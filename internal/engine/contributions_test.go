package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPriceContribution_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		closes   []float64
		expected float64
	}{
		{"ten percent gain", []float64{100, 110}, 10.0},
		{"flat window", []float64{100, 100, 100}, 0},
		{"clamped upside", []float64{100, 300}, 50},
		{"clamped downside", []float64{100, 10}, -50},
		{"small decline", []float64{200, 190}, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contribution, _, err := PriceContribution(tt.closes)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(contribution, tt.expected) {
				t.Errorf("expected %.4f, got %.4f", tt.expected, contribution)
			}
			if contribution < -50 || contribution > 50 {
				t.Errorf("contribution %.4f outside [-50, 50]", contribution)
			}
		})
	}
}

func TestPriceContribution_Errors(t *testing.T) {
	if _, _, err := PriceContribution([]float64{100}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for single point, got %v", err)
	}
	if _, _, err := PriceContribution(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for empty series, got %v", err)
	}
	if _, _, err := PriceContribution([]float64{0, 10}); !errors.Is(err, ErrInvalidPriceData) {
		t.Errorf("expected ErrInvalidPriceData for zero baseline, got %v", err)
	}
}

func TestSentimentContribution(t *testing.T) {
	items := []model.NewsItem{
		{SentimentScore: 0.5},
		{SentimentScore: -0.1},
		{SentimentScore: 0.3},
	}
	contribution, avg := SentimentContribution(items)
	if !almostEqual(contribution, 7.0) {
		t.Errorf("expected contribution 7.0, got %.6f", contribution)
	}
	if math.Abs(avg-0.233333) > 1e-4 {
		t.Errorf("expected avg ~0.2333, got %.6f", avg)
	}
}

func TestSentimentContribution_EmptyIsNeutral(t *testing.T) {
	contribution, avg := SentimentContribution(nil)
	if contribution != 0 || avg != 0 {
		t.Errorf("expected neutral zero for empty news, got contribution=%.4f avg=%.4f", contribution, avg)
	}
	contribution, avg = SentimentContribution([]model.NewsItem{})
	if contribution != 0 || avg != 0 {
		t.Errorf("expected neutral zero for empty slice, got contribution=%.4f avg=%.4f", contribution, avg)
	}
}

func TestSentimentContribution_Bounds(t *testing.T) {
	extremes := []model.NewsItem{{SentimentScore: 1}, {SentimentScore: 1}}
	contribution, _ := SentimentContribution(extremes)
	if contribution > 30 || contribution < -30 {
		t.Errorf("contribution %.4f outside [-30, 30]", contribution)
	}
}

func TestMacroContribution(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"empty series", nil, 0},
		{"single point", []float64{5.0}, 0},
		{"rising rate is negative", []float64{3.0, 4.5}, -7.5},
		{"falling rate is positive", []float64{4.0, 3.0}, 3.75},
		{"zero baseline degrades to zero", []float64{0, 2.0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := model.MacroSeries{SeriesID: "FEDFUNDS"}
			for _, v := range tt.values {
				series.Points = append(series.Points, model.MacroPoint{Value: v})
			}
			if got := MacroContribution(series); !almostEqual(got, tt.expected) {
				t.Errorf("expected %.4f, got %.4f", tt.expected, got)
			}
		})
	}
}

func TestVolatilityPenalty(t *testing.T) {
	tests := []struct {
		name            string
		closes          []float64
		expectedPenalty float64
		expectedChange  float64
	}{
		{"half price crash", []float64{100, 100, 100, 50}, 5.0, -0.5},
		{"quiet day", []float64{100, 101}, 0, 0.01},
		{"exactly at threshold", []float64{100, 200, 210}, 0, 0.05},
		{"just above threshold", []float64{100, 106}, 0.6, 0.06},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			penalty, change, err := VolatilityPenalty(tt.closes)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(penalty, tt.expectedPenalty) {
				t.Errorf("expected penalty %.4f, got %.4f", tt.expectedPenalty, penalty)
			}
			if !almostEqual(change, tt.expectedChange) {
				t.Errorf("expected change %.4f, got %.4f", tt.expectedChange, change)
			}
		})
	}
}

func TestVolatilityPenalty_Errors(t *testing.T) {
	if _, _, err := VolatilityPenalty([]float64{100}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
	if _, _, err := VolatilityPenalty([]float64{100, 0, 50}); !errors.Is(err, ErrInvalidPriceData) {
		t.Errorf("expected ErrInvalidPriceData for zero previous close, got %v", err)
	}
}
