package engine

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/metrics"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/sentiment"
)

// PriceSource supplies the trailing daily price window for a ticker.
type PriceSource interface {
	PriceSeries(ctx context.Context, ticker string, days int) (*model.PriceSeries, error)
}

// NewsSource supplies recent raw headlines for a ticker.
type NewsSource interface {
	Headlines(ctx context.Context, ticker string) ([]model.Headline, error)
}

// MacroSource supplies a macroeconomic series by its identifier.
type MacroSource interface {
	Series(ctx context.Context, seriesID string) (model.MacroSeries, error)
}

const (
	baseScore = 50.0
	// maxNewsItems caps how many headlines feed the sentiment aggregate.
	maxNewsItems = 5
)

// SkipReason explains why a ticker was excluded from batch results.
type SkipReason string

const (
	SkipEmptyTicker      SkipReason = "empty_ticker"
	SkipPriceUnavailable SkipReason = "price_unavailable"
	SkipInsufficientData SkipReason = "insufficient_data"
	SkipInvalidPriceData SkipReason = "invalid_price_data"
)

// Outcome is the tagged result of one per-ticker analysis attempt: either a
// populated Result or a SkipReason, never both.
type Outcome struct {
	Ticker string
	Result *model.TickerResult
	Reason SkipReason
}

// OK reports whether the attempt produced a result.
func (o Outcome) OK() bool { return o.Result != nil }

// Options tunes engine behavior; zero values select the defaults.
type Options struct {
	// WindowDays is the trailing price window length. With exactly 2 points
	// the window change and the daily change collapse into the same move,
	// which makes the volatility signal degenerate; keep the window at its
	// 30-day default unless you accept that coupling.
	WindowDays int
	// MacroSeriesID names the macro series fetched once per batch.
	MacroSeriesID string
}

// Engine computes decomposed credit scores from injected collaborators.
// It holds no hidden globals and no mutable state; each analysis call owns
// its fetched data exclusively.
type Engine struct {
	prices        PriceSource
	news          NewsSource
	macro         MacroSource
	scorer        sentiment.Scorer
	windowDays    int
	macroSeriesID string
}

// New creates an Engine with the given collaborators.
func New(prices PriceSource, news NewsSource, macro MacroSource, scorer sentiment.Scorer, opts Options) *Engine {
	if opts.WindowDays < 2 {
		opts.WindowDays = 30
	}
	if opts.MacroSeriesID == "" {
		opts.MacroSeriesID = "FEDFUNDS"
	}
	return &Engine{
		prices:        prices,
		news:          news,
		macro:         macro,
		scorer:        scorer,
		windowDays:    opts.WindowDays,
		macroSeriesID: opts.MacroSeriesID,
	}
}

// AnalyzeTicker analyzes a single ticker. Any of prices, news, and macro may
// be injected to reuse already-fetched data or for testing; nil prices and
// nil news are fetched from the collaborators. Macro data is never fetched
// here — batch analysis owns the shared macro fetch.
func (e *Engine) AnalyzeTicker(ctx context.Context, ticker string, prices *model.PriceSeries, news []model.NewsItem, macro model.MacroSeries) Outcome {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Outcome{Ticker: ticker, Reason: SkipEmptyTicker}
	}
	return e.analyze(ctx, ticker, prices, news, macro)
}

// AnalyzeBatch scores each ticker independently and returns the successful
// results in input order. It never fails for a well-formed list: per-ticker
// problems are logged and the ticker is excluded.
func (e *Engine) AnalyzeBatch(ctx context.Context, tickers []string) []model.TickerResult {
	outcomes := e.Outcomes(ctx, tickers)
	results := make([]model.TickerResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() {
			results = append(results, *o.Result)
		}
	}
	return results
}

// Outcomes is AnalyzeBatch with the skipped tickers kept visible. The macro
// series is fetched once and shared read-only across the whole batch.
func (e *Engine) Outcomes(ctx context.Context, tickers []string) []Outcome {
	macro := e.fetchMacro(ctx)

	outcomes := make([]Outcome, 0, len(tickers))
	for _, raw := range tickers {
		ticker := strings.ToUpper(strings.TrimSpace(raw))
		if ticker == "" {
			continue
		}
		o := e.analyze(ctx, ticker, nil, nil, macro)
		if !o.OK() {
			log.Warn().Str("ticker", ticker).Str("reason", string(o.Reason)).Msg("ticker skipped")
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func (e *Engine) fetchMacro(ctx context.Context) model.MacroSeries {
	series, err := e.macro.Series(ctx, e.macroSeriesID)
	if err != nil {
		log.Warn().Err(err).Str("series", e.macroSeriesID).Msg("macro fetch failed, scoring without macro factor")
		return model.MacroSeries{SeriesID: e.macroSeriesID}
	}
	return series
}

func (e *Engine) analyze(ctx context.Context, ticker string, prices *model.PriceSeries, news []model.NewsItem, macro model.MacroSeries) Outcome {
	if prices == nil {
		fetched, err := e.prices.PriceSeries(ctx, ticker, e.windowDays)
		if err != nil {
			log.Warn().Err(err).Str("ticker", ticker).Msg("price fetch failed")
			return e.skip(ticker, SkipPriceUnavailable)
		}
		prices = fetched
	}
	if news == nil {
		news = e.fetchNews(ctx, ticker)
	}
	if len(news) > maxNewsItems {
		news = news[:maxNewsItems]
	}

	result, err := e.compose(ticker, prices, news, macro)
	if err != nil {
		if errors.Is(err, ErrInvalidPriceData) {
			return e.skip(ticker, SkipInvalidPriceData)
		}
		return e.skip(ticker, SkipInsufficientData)
	}
	metrics.Analyses.WithLabelValues("ok").Inc()
	return Outcome{Ticker: ticker, Result: result}
}

func (e *Engine) skip(ticker string, reason SkipReason) Outcome {
	metrics.Analyses.WithLabelValues("skipped").Inc()
	return Outcome{Ticker: ticker, Reason: reason}
}

// fetchNews loads headlines, scores them, and classifies the event type.
// A news failure degrades to an empty list; it never blocks scoring.
func (e *Engine) fetchNews(ctx context.Context, ticker string) []model.NewsItem {
	headlines, err := e.news.Headlines(ctx, ticker)
	if err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("news fetch failed, scoring without sentiment")
		return []model.NewsItem{}
	}
	if len(headlines) > maxNewsItems {
		headlines = headlines[:maxNewsItems]
	}
	items := make([]model.NewsItem, 0, len(headlines))
	for _, h := range headlines {
		items = append(items, model.NewsItem{
			Title:          h.Title,
			SentimentScore: e.scorer.Score(h.Title),
			EventType:      ClassifyEvent(h.Title),
			Published:      h.Published,
		})
	}
	return items
}

// compose combines the contributions into a final bounded score breakdown.
func (e *Engine) compose(ticker string, prices *model.PriceSeries, news []model.NewsItem, macro model.MacroSeries) (*model.TickerResult, error) {
	closes := prices.Closes()

	priceContribution, priceChange, err := PriceContribution(closes)
	if err != nil {
		return nil, err
	}
	sentimentContribution, avgSentiment := SentimentContribution(news)
	macroContribution := MacroContribution(macro)
	volatilityPenalty, dailyChange, err := VolatilityPenalty(closes)
	if err != nil {
		return nil, err
	}

	score := clamp(baseScore+priceContribution+sentimentContribution+macroContribution-volatilityPenalty, 0, 100)
	alert := math.Abs(dailyChange) > volatilityThreshold

	breakdown := model.ScoreBreakdown{
		Score:                 round2(score),
		PriceContribution:     round2(priceContribution),
		SentimentContribution: round2(sentimentContribution),
		MacroContribution:     round2(macroContribution),
		VolatilityPenalty:     round2(volatilityPenalty),
		DailyChange:           round2(dailyChange * 100),
		AvgSentiment:          round4(avgSentiment),
		PriceChange30d:        round2(priceChange * 100),
		RiskLevel:             riskLevel(score),
		Alert:                 alert,
	}

	if news == nil {
		news = []model.NewsItem{}
	}
	return &model.TickerResult{
		Ticker:       ticker,
		Score:        breakdown,
		News:         news,
		CurrentPrice: prices.LastClose(),
		Timestamp:    time.Now().Format(time.RFC3339),
	}, nil
}

// riskTiers maps inclusive score lower bounds to risk levels; scores below
// every bound are low risk.
var riskTiers = []struct {
	MinScore float64
	Level    model.RiskLevel
}{
	{70, model.RiskHigh},
	{40, model.RiskMedium},
}

func riskLevel(score float64) model.RiskLevel {
	for _, t := range riskTiers {
		if score >= t.MinScore {
			return t.Level
		}
	}
	return model.RiskLow
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
