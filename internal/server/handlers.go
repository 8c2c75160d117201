package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

const (
	serviceName    = "CredTech Dashboard API"
	serviceVersion = "1.0.0"

	// maxTickersPerRequest caps a batch; extra tickers are ignored.
	maxTickersPerRequest = 10
	// maxTickerLen rejects obviously malformed single-ticker lookups.
	maxTickerLen = 5
)

type analyzeRequest struct {
	Tickers []string `json:"tickers"`
	Format  string   `json:"format,omitempty"`
}

// handleAnalyze scores one or more tickers.
//
// Request:  {"tickers": ["AAPL", "MSFT", "TSLA"]}
// Response: {"status": "success", "data": [...], "count": N}
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request must contain 'tickers' array")
		return
	}
	if len(req.Tickers) == 0 {
		writeError(w, http.StatusBadRequest, "Tickers must be a non-empty array")
		return
	}
	if len(req.Tickers) > maxTickersPerRequest {
		req.Tickers = req.Tickers[:maxTickersPerRequest]
	}

	results := s.analyzer.AnalyzeBatch(r.Context(), req.Tickers)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   results,
		"count":  len(results),
	})
}

// handleTicker scores a single ticker; 404 when no data is available.
func (s *Server) handleTicker(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["ticker"]))
	if ticker == "" || len(ticker) > maxTickerLen {
		writeError(w, http.StatusBadRequest, "Invalid ticker format")
		return
	}

	results := s.analyzer.AnalyzeBatch(r.Context(), []string{ticker})
	if len(results) == 0 {
		writeError(w, http.StatusNotFound, "No data available for ticker "+ticker)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   results[0],
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// handleExport returns analysis results as a CSV attachment, or as JSON
// when the request asks for format "json".
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request must contain 'tickers' array")
		return
	}
	if len(req.Tickers) == 0 {
		writeError(w, http.StatusBadRequest, "Tickers must be a non-empty array")
		return
	}
	if len(req.Tickers) > maxTickersPerRequest {
		req.Tickers = req.Tickers[:maxTickersPerRequest]
	}

	results := s.analyzer.AnalyzeBatch(r.Context(), req.Tickers)

	if req.Format == "json" {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":        "success",
			"data":          results,
			"export_format": "json",
			"timestamp":     time.Now().Format(time.RFC3339),
		})
		return
	}
	writeCSV(w, results)
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Resource not found")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}
