package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeTempConfig(t, `
server:
  host: "127.0.0.1"
  port: 8080
macro:
  fred_api_key: "testkey"
  series_id: "DGS10"
score:
  window_days: 14
watchlist:
  tickers: ["AAPL", "MSFT"]
  cron: "0 0 * * * *"
cache:
  sqlite_path: "/tmp/cache.db"
  ttl_minutes: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Macro.FREDAPIKey != "testkey" || cfg.Macro.SeriesID != "DGS10" {
		t.Errorf("unexpected macro config: %+v", cfg.Macro)
	}
	if cfg.Score.WindowDays != 14 {
		t.Errorf("expected window 14, got %d", cfg.Score.WindowDays)
	}
	if len(cfg.Watchlist.Tickers) != 2 || cfg.Watchlist.Tickers[0] != "AAPL" {
		t.Errorf("unexpected watchlist: %+v", cfg.Watchlist.Tickers)
	}
	if cfg.Cache.SQLitePath != "/tmp/cache.db" || cfg.Cache.TTLMinutes != 5 {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed for missing file: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Macro.SeriesID != "FEDFUNDS" {
		t.Errorf("expected default series FEDFUNDS, got %q", cfg.Macro.SeriesID)
	}
	if cfg.Score.WindowDays != 30 {
		t.Errorf("expected default window 30, got %d", cfg.Score.WindowDays)
	}
	if cfg.Watchlist.Cron == "" {
		t.Error("expected default cron expression")
	}
	if cfg.Cache.TTLMinutes != 15 {
		t.Errorf("expected default cache ttl 15, got %d", cfg.Cache.TTLMinutes)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 8080
macro:
  series_id: "DGS10"
`)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("FRED_API_KEY", "envkey")
	t.Setenv("FRED_SERIES_ID", "CPIAUCSL")
	t.Setenv("SCORE_WINDOW_DAYS", "7")
	t.Setenv("WATCHLIST", "AAPL, msft ,")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected env port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Macro.FREDAPIKey != "envkey" {
		t.Errorf("expected env API key, got %q", cfg.Macro.FREDAPIKey)
	}
	if cfg.Macro.SeriesID != "CPIAUCSL" {
		t.Errorf("expected env series to win over file, got %q", cfg.Macro.SeriesID)
	}
	if cfg.Score.WindowDays != 7 {
		t.Errorf("expected env window 7, got %d", cfg.Score.WindowDays)
	}
	if len(cfg.Watchlist.Tickers) != 2 || cfg.Watchlist.Tickers[1] != "msft" {
		t.Errorf("expected trimmed watchlist of 2, got %+v", cfg.Watchlist.Tickers)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "server: [not a map")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Server.Port = 5000
		cfg.Score.WindowDays = 30
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg := valid()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	cfg = valid()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port above 65535")
	}

	cfg = valid()
	cfg.Score.WindowDays = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for window below 2")
	}

	cfg = valid()
	cfg.Cache.TTLMinutes = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative cache ttl")
	}
}
