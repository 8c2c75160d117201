package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/cache"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/config"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/engine"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/notifier"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/scheduler"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/sentiment"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/server"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/source"
)

// buildEngine wires the data sources, cache, and breakers into an engine.
// The returned cleanup closes the cache store.
func buildEngine(cfg *config.Config) (*engine.Engine, func()) {
	var store cache.Store
	if cfg.Cache.SQLitePath != "" {
		sqlStore, err := cache.NewSQLiteStore(cfg.Cache.SQLitePath, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite cache init failed, running uncached")
			store = cache.NewNoopStore()
		} else {
			store = sqlStore
		}
	} else {
		store = cache.NewNoopStore()
	}

	prices := source.NewCachedPriceSource(
		source.WithPriceBreaker(source.NewYahooPriceSource(cfg.Proxy)),
		store,
	)
	news := source.WithNewsBreaker(source.NewYahooRSSNewsSource(cfg.Proxy))
	macro := source.NewFREDMacroSource(cfg.Macro.FREDAPIKey, cfg.Proxy)

	eng := engine.New(prices, news, macro, sentiment.NewLexiconScorer(), engine.Options{
		WindowDays:    cfg.Score.WindowDays,
		MacroSeriesID: cfg.Macro.SeriesID,
	})
	return eng, func() { _ = store.Close() }
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, cleanup := buildEngine(cfg)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Watchlist refresh runs only when tickers are configured.
	if len(cfg.Watchlist.Tickers) > 0 {
		var tn *notifier.TelegramNotifier
		if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
			tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		}
		sched := scheduler.NewScheduler(ctx, eng, tn, cfg.Watchlist.Tickers)
		if err := sched.Register(cfg.Watchlist.Cron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Info().Msg("RUN_ON_START enabled, refreshing watchlist now")
			go sched.RunNow()
		}
	}

	srv := server.New(server.DefaultConfig(cfg.Server.Host, cfg.Server.Port), eng)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received, stopping")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
