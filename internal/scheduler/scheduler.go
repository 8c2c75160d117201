package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/amritsharan/credit-dashboard-hackathon/internal/engine"
	"github.com/amritsharan/credit-dashboard-hackathon/internal/notifier"
)

// Scheduler periodically re-scores a configured watchlist and raises
// Telegram alerts for tickers whose volatility alert fires. Results are
// logged, never stored.
type Scheduler struct {
	Cron      *cron.Cron
	Engine    *engine.Engine
	Notifier  *notifier.TelegramNotifier // nil disables alerting
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *engine.Engine, tn *notifier.TelegramNotifier, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Engine:    eng,
		Notifier:  tn,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register schedules the watchlist refresh with the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register watchlist refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Strs("watchlist", s.Watchlist).Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the refresh immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Info().Msg("running watchlist refresh")

	outcomes := s.Engine.Outcomes(s.Ctx, s.Watchlist)

	var results, alerts []engine.Outcome
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		results = append(results, o)
		log.Info().
			Str("ticker", o.Ticker).
			Float64("score", o.Result.Score.Score).
			Str("risk", string(o.Result.Score.RiskLevel)).
			Bool("alert", o.Result.Score.Alert).
			Msg("watchlist score")
		if o.Result.Score.Alert {
			alerts = append(alerts, o)
		}
	}

	if s.Notifier == nil || len(alerts) == 0 {
		return
	}
	for _, o := range alerts {
		if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatAlert(*o.Result), 3); err != nil {
			log.Error().Err(err).Str("ticker", o.Ticker).Msg("alert notification failed")
		}
	}
}
