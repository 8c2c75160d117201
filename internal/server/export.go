package server

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

var csvHeader = []string{
	"ticker", "score", "risk_level",
	"price_contribution", "sentiment_contribution", "macro_contribution",
	"volatility_penalty", "daily_change", "avg_sentiment", "price_change_30d",
	"alert", "current_price", "timestamp",
}

// writeCSV streams analysis results as a CSV attachment.
func writeCSV(w http.ResponseWriter, results []model.TickerResult) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="credit_scores.csv"`)

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		log.Error().Err(err).Msg("csv header write failed")
		return
	}
	for _, r := range results {
		record := []string{
			r.Ticker,
			formatFloat(r.Score.Score),
			string(r.Score.RiskLevel),
			formatFloat(r.Score.PriceContribution),
			formatFloat(r.Score.SentimentContribution),
			formatFloat(r.Score.MacroContribution),
			formatFloat(r.Score.VolatilityPenalty),
			formatFloat(r.Score.DailyChange),
			strconv.FormatFloat(r.Score.AvgSentiment, 'f', 4, 64),
			formatFloat(r.Score.PriceChange30d),
			strconv.FormatBool(r.Score.Alert),
			formatFloat(r.CurrentPrice),
			r.Timestamp,
		}
		if err := cw.Write(record); err != nil {
			log.Error().Err(err).Str("ticker", r.Ticker).Msg("csv row write failed")
			return
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
