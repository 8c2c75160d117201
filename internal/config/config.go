package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Macro struct {
		FREDAPIKey string `yaml:"fred_api_key"`
		SeriesID   string `yaml:"series_id"`
	} `yaml:"macro"`
	Score struct {
		WindowDays int `yaml:"window_days"`
	} `yaml:"score"`
	Watchlist struct {
		Tickers []string `yaml:"tickers"`
		Cron    string   `yaml:"cron"`
	} `yaml:"watchlist"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Cache struct {
		SQLitePath string `yaml:"sqlite_path"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		cfg.Macro.FREDAPIKey = v
	}
	if v := os.Getenv("FRED_SERIES_ID"); v != "" {
		cfg.Macro.SeriesID = v
	}
	if v := os.Getenv("SCORE_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Score.WindowDays = days
		}
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		var tickers []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tickers = append(tickers, t)
			}
		}
		cfg.Watchlist.Tickers = tickers
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Macro.SeriesID == "" {
		cfg.Macro.SeriesID = "FEDFUNDS"
	}
	if cfg.Score.WindowDays == 0 {
		cfg.Score.WindowDays = 30
	}
	if cfg.Watchlist.Cron == "" {
		cfg.Watchlist.Cron = "0 */10 * * * *"
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 15
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Score.WindowDays < 2 {
		return fmt.Errorf("score.window_days must be at least 2, got %d", c.Score.WindowDays)
	}
	if c.Cache.TTLMinutes < 0 {
		return fmt.Errorf("cache.ttl_minutes must not be negative")
	}
	return nil
}
