package source

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/metrics"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// FREDMacroSource fetches macroeconomic series from the FRED observations API.
// Any failure degrades to an empty series: macro unavailability must never
// fail a ticker's scoring.
type FREDMacroSource struct {
	client  *resty.Client
	apiKey  string
	limiter *rate.Limiter
}

// NewFREDMacroSource creates a macro source. An empty API key is allowed;
// the source then always returns an empty series.
func NewFREDMacroSource(apiKey, proxyURL string) *FREDMacroSource {
	client := resty.New()
	client.SetBaseURL("https://api.stlouisfed.org")
	client.SetTimeout(10 * time.Second)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &FREDMacroSource{
		client:  client,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(1), 2),
	}
}

// SetBaseURL overrides the API endpoint; used by tests.
func (s *FREDMacroSource) SetBaseURL(baseURL string) {
	s.client.SetBaseURL(baseURL)
}

// fredObservations mirrors the FRED JSON payload. Values arrive as strings;
// missing observations are encoded as ".".
type fredObservations struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// Series fetches the named series. Failures are logged and reported as an
// empty series with a nil error.
func (s *FREDMacroSource) Series(ctx context.Context, seriesID string) (model.MacroSeries, error) {
	empty := model.MacroSeries{SeriesID: seriesID}

	if s.apiKey == "" {
		log.Warn().Str("series", seriesID).Msg("FRED API key not set, returning empty macro series")
		return empty, nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return empty, nil
	}

	var payload fredObservations
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"series_id": seriesID,
			"api_key":   s.apiKey,
			"file_type": "json",
		}).
		SetResult(&payload).
		Get("/fred/series/observations")
	if err != nil {
		metrics.SourceErrors.WithLabelValues("macro").Inc()
		log.Error().Err(err).Str("series", seriesID).Msg("FRED fetch failed")
		return empty, nil
	}
	if resp.StatusCode() != http.StatusOK {
		metrics.SourceErrors.WithLabelValues("macro").Inc()
		log.Error().Int("status", resp.StatusCode()).Str("series", seriesID).Msg("FRED fetch failed")
		return empty, nil
	}

	series := model.MacroSeries{SeriesID: seriesID}
	for _, obs := range payload.Observations {
		// "." marks a missing observation
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		date, err := time.Parse("2006-01-02", obs.Date)
		if err != nil {
			continue
		}
		series.Points = append(series.Points, model.MacroPoint{Date: date, Value: value})
	}
	return series, nil
}
