package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/model"
)

func newTestStore(t *testing.T, ttl time.Duration) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"), ttl)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSeries(ticker string, fetchedAt time.Time, closes ...float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(closes))
	day := fetchedAt.AddDate(0, 0, -len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time: day.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 1000,
		}
	}
	return &model.PriceSeries{Ticker: ticker, Bars: bars, FetchedAt: fetchedAt}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestStore(t, time.Hour)
	series := testSeries("AAPL", time.Now(), 100, 101, 102)

	if err := store.PutPrices(series, 30); err != nil {
		t.Fatalf("PutPrices failed: %v", err)
	}

	got, ok := store.GetPrices("AAPL", 30)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Ticker != "AAPL" {
		t.Errorf("expected ticker AAPL, got %q", got.Ticker)
	}
	if got.Len() != 3 {
		t.Fatalf("expected 3 bars, got %d", got.Len())
	}
	for i, c := range []float64{100, 101, 102} {
		if got.Bars[i].Close != c {
			t.Errorf("bar %d: expected close %v, got %v", i, c, got.Bars[i].Close)
		}
		if got.Bars[i].Time.Unix() != series.Bars[i].Time.Unix() {
			t.Errorf("bar %d: time not preserved", i)
		}
	}
}

func TestSQLiteStore_MissOnUnknownKey(t *testing.T) {
	store := newTestStore(t, time.Hour)
	series := testSeries("AAPL", time.Now(), 100, 101)

	if err := store.PutPrices(series, 30); err != nil {
		t.Fatalf("PutPrices failed: %v", err)
	}
	if _, ok := store.GetPrices("MSFT", 30); ok {
		t.Error("expected miss for unknown ticker")
	}
	// Same ticker, different window length, is a different key.
	if _, ok := store.GetPrices("AAPL", 90); ok {
		t.Error("expected miss for different window length")
	}
}

func TestSQLiteStore_TTLExpiry(t *testing.T) {
	store := newTestStore(t, time.Minute)
	stale := testSeries("AAPL", time.Now().Add(-time.Hour), 100, 101)

	if err := store.PutPrices(stale, 30); err != nil {
		t.Fatalf("PutPrices failed: %v", err)
	}
	if _, ok := store.GetPrices("AAPL", 30); ok {
		t.Error("expected miss for entry older than the TTL")
	}
}

func TestSQLiteStore_Upsert(t *testing.T) {
	store := newTestStore(t, time.Hour)

	if err := store.PutPrices(testSeries("AAPL", time.Now(), 100), 30); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if err := store.PutPrices(testSeries("AAPL", time.Now(), 100, 105), 30); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, ok := store.GetPrices("AAPL", 30)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Len() != 2 {
		t.Errorf("expected updated payload with 2 bars, got %d", got.Len())
	}
}

func TestNoopStore(t *testing.T) {
	store := NewNoopStore()
	if _, ok := store.GetPrices("AAPL", 30); ok {
		t.Error("noop store must never hit")
	}
	if err := store.PutPrices(&model.PriceSeries{Ticker: "AAPL"}, 30); err != nil {
		t.Errorf("noop put must not fail: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("noop close must not fail: %v", err)
	}
}
