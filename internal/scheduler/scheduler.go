package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

const probeTimeout = 5 * time.Second

// BackendPinger is the liveness check run on every tick.
type BackendPinger interface {
	Ping(ctx context.Context) error
}

// NewHealthScheduler runs a liveness probe against the search backend on the
// given cron schedule (seconds field included) and records the outcome.
func NewHealthScheduler(lc fx.Lifecycle, schedule string, pinger BackendPinger, health *BackendHealth) (*cron.Cron, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(schedule, func() {
		Probe(context.Background(), pinger, health)
	})
	if err != nil {
		log.Error().Err(err).Str("schedule", schedule).Msg("Failed to add backend health probe job")
		return nil, err
	}
	log.Info().Str("schedule", schedule).Msg("Scheduled backend health probe")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c, nil
}

// Probe pings the backend once and stores the result.
func Probe(ctx context.Context, pinger BackendPinger, health *BackendHealth) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := pinger.Ping(probeCtx); err != nil {
		if health.Set(StatusDown) != StatusDown {
			log.Warn().Err(err).Msg("Search backend is not reachable")
		}
		return
	}
	if health.Set(StatusUp) != StatusUp {
		log.Info().Msg("Search backend is reachable")
	}
}
