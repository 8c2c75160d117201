package model

// RiskLevel is the three-tier classification derived from the credit score.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// ScoreBreakdown is the decomposed credit score for one ticker.
// All contribution fields are rounded to 2 decimal places and AvgSentiment
// to 4; the composition itself happens on unrounded values.
type ScoreBreakdown struct {
	Score                 float64   `json:"score"`
	PriceContribution     float64   `json:"price_contribution"`
	SentimentContribution float64   `json:"sentiment_contribution"`
	MacroContribution     float64   `json:"macro_contribution"`
	VolatilityPenalty     float64   `json:"volatility_penalty"`
	DailyChange           float64   `json:"daily_change"`
	AvgSentiment          float64   `json:"avg_sentiment"`
	PriceChange30d        float64   `json:"price_change_30d"`
	RiskLevel             RiskLevel `json:"risk_level"`
	Alert                 bool      `json:"alert"`
}

// TickerResult is the full analysis output for one ticker.
type TickerResult struct {
	Ticker       string         `json:"ticker"`
	Score        ScoreBreakdown `json:"score"`
	News         []NewsItem     `json:"news"`
	CurrentPrice float64        `json:"current_price"`
	Timestamp    string         `json:"timestamp"`
}
