package notifier

import (
	"strings"
	"testing"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

func result(ticker string, score float64, alert bool) model.TickerResult {
	return model.TickerResult{
		Ticker: ticker,
		Score: model.ScoreBreakdown{
			Score:             score,
			PriceContribution: 10,
			MacroContribution: -2.5,
			DailyChange:       -6.2,
			PriceChange30d:    10,
			RiskLevel:         model.RiskMedium,
			Alert:             alert,
		},
		CurrentPrice: 182.4,
	}
}

func TestFormatWatchlistReport(t *testing.T) {
	msg := FormatWatchlistReport([]model.TickerResult{
		result("AAPL", 58.5, false),
		result("TSLA", 32.1, true),
	})

	if !strings.Contains(msg, "AAPL: 58.50 (Medium risk)") {
		t.Errorf("missing AAPL line:\n%s", msg)
	}
	if !strings.Contains(msg, "TSLA: 32.10 (Medium risk) 🔴") {
		t.Errorf("missing alert marker on TSLA line:\n%s", msg)
	}
	if !strings.Contains(msg, "price +10.00") || !strings.Contains(msg, "macro -2.50") {
		t.Errorf("missing contribution line:\n%s", msg)
	}
}

func TestFormatAlert(t *testing.T) {
	r := result("TSLA", 32.1, true)
	r.News = []model.NewsItem{{Title: "Deliveries miss estimates", EventType: model.EventWarning}}

	msg := FormatAlert(r)
	if !strings.Contains(msg, "Volatility Alert: TSLA") {
		t.Errorf("missing alert header:\n%s", msg)
	}
	if !strings.Contains(msg, "Daily move: -6.20%") {
		t.Errorf("missing daily move:\n%s", msg)
	}
	if !strings.Contains(msg, "[Warning Event] Deliveries miss estimates") {
		t.Errorf("missing headline:\n%s", msg)
	}
}

func TestFormatAlert_NoNews(t *testing.T) {
	msg := FormatAlert(result("AAPL", 58.5, true))
	if strings.Contains(msg, "Latest:") {
		t.Errorf("unexpected headline section:\n%s", msg)
	}
}
