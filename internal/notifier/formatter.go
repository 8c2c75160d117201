package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// FormatWatchlistReport formats a scored watchlist into a Telegram message.
func FormatWatchlistReport(results []model.TickerResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Credit Score Board</b> | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	for _, r := range results {
		marker := ""
		if r.Score.Alert {
			marker = " 🔴"
		}
		b.WriteString(fmt.Sprintf("%s: %.2f (%s risk)%s\n", r.Ticker, r.Score.Score, r.Score.RiskLevel, marker))
		b.WriteString(fmt.Sprintf("  price %+.2f | sentiment %+.2f | macro %+.2f | 30d %+.2f%%\n",
			r.Score.PriceContribution, r.Score.SentimentContribution,
			r.Score.MacroContribution, r.Score.PriceChange30d))
	}
	return b.String()
}

// FormatAlert formats a single-ticker volatility alert.
func FormatAlert(r model.TickerResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔴 <b>Volatility Alert: %s</b>\n\n", r.Ticker))
	b.WriteString(fmt.Sprintf("Daily move: %+.2f%%\n", r.Score.DailyChange))
	b.WriteString(fmt.Sprintf("Credit score: %.2f (%s risk)\n", r.Score.Score, r.Score.RiskLevel))
	b.WriteString(fmt.Sprintf("Current price: %.2f\n", r.CurrentPrice))
	if len(r.News) > 0 {
		b.WriteString(fmt.Sprintf("\nLatest: [%s] %s\n", r.News[0].EventType, r.News[0].Title))
	}
	return b.String()
}
