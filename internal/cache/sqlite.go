package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

// SQLiteStore caches price series payloads in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
}

// NewSQLiteStore opens (or creates) the cache database and runs migrations.
func NewSQLiteStore(dbPath string, ttl time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so concurrent API requests can read while one writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, ttl: ttl}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Dur("ttl", ttl).Msg("sqlite price cache opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_cache (
			ticker     TEXT    NOT NULL,
			days       INTEGER NOT NULL,
			fetched_at INTEGER NOT NULL,
			payload    TEXT    NOT NULL,
			PRIMARY KEY (ticker, days)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_cache_fetched ON price_cache(fetched_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

// cachedSeries is the stored JSON shape; bar times are kept as unix seconds.
type cachedSeries struct {
	Ticker string      `json:"ticker"`
	Bars   []cachedBar `json:"bars"`
}

type cachedBar struct {
	Time   int64   `json:"t"`
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume float64 `json:"v"`
}

// GetPrices returns the cached series for (ticker, days) if it is fresher
// than the TTL.
func (s *SQLiteStore) GetPrices(ticker string, days int) (*model.PriceSeries, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fetchedAt int64
	var payload string
	err := s.db.QueryRow(
		`SELECT fetched_at, payload FROM price_cache WHERE ticker = ? AND days = ?`,
		ticker, days,
	).Scan(&fetchedAt, &payload)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Str("ticker", ticker).Msg("price cache read failed")
		}
		return nil, false
	}

	fetched := time.Unix(fetchedAt, 0)
	if time.Since(fetched) > s.ttl {
		return nil, false
	}

	var cs cachedSeries
	if err := json.Unmarshal([]byte(payload), &cs); err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("price cache decode failed")
		return nil, false
	}

	series := &model.PriceSeries{Ticker: cs.Ticker, FetchedAt: fetched}
	series.Bars = make([]model.OHLCV, len(cs.Bars))
	for i, b := range cs.Bars {
		series.Bars[i] = model.OHLCV{
			Time: time.Unix(b.Time, 0), Open: b.Open, High: b.High,
			Low: b.Low, Close: b.Close, Volume: b.Volume,
		}
	}
	return series, true
}

// PutPrices upserts the series payload for (ticker, days).
func (s *SQLiteStore) PutPrices(series *model.PriceSeries, days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs := cachedSeries{Ticker: series.Ticker, Bars: make([]cachedBar, len(series.Bars))}
	for i, b := range series.Bars {
		cs.Bars[i] = cachedBar{
			Time: b.Time.Unix(), Open: b.Open, High: b.High,
			Low: b.Low, Close: b.Close, Volume: b.Volume,
		}
	}
	payload, err := json.Marshal(cs)
	if err != nil {
		return fmt.Errorf("encode series: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO price_cache (ticker, days, fetched_at, payload) VALUES (?,?,?,?)
		 ON CONFLICT(ticker, days) DO UPDATE SET fetched_at=excluded.fetched_at, payload=excluded.payload`,
		series.Ticker, days, series.FetchedAt.Unix(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("write price cache: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	log.Info().Msg("closing sqlite price cache")
	return s.db.Close()
}
