package model

// EventCategory classifies a headline by its credit-risk implication.
type EventCategory string

const (
	EventHighRisk EventCategory = "High Risk Event"
	EventPositive EventCategory = "Positive Event"
	EventWarning  EventCategory = "Warning Event"
	EventNeutral  EventCategory = "Neutral Event"
)

// Headline is a raw news entry as delivered by a news feed,
// before sentiment scoring and event classification.
type Headline struct {
	Title     string
	Published string
}

// NewsItem is a scored and classified headline for one ticker.
type NewsItem struct {
	Title          string        `json:"title"`
	SentimentScore float64       `json:"sentiment_score"`
	EventType      EventCategory `json:"event_type"`
	Published      string        `json:"published"`
}
