package quickwit

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/rs/zerolog/log"
)

// WaitForBackend pings the node with exponential backoff until it answers or
// maxWait elapses. A non-positive maxWait performs a single attempt.
func WaitForBackend(ctx context.Context, client *Client, maxWait time.Duration) error {
	operation := func() error {
		if err := client.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Attempt failed: Quickwit liveness probe")
			return err
		}
		return nil
	}

	if maxWait <= 0 {
		return operation()
	}

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 500 * time.Millisecond
	connectBackoff.MaxInterval = 5 * time.Second
	connectBackoff.MaxElapsedTime = maxWait

	log.Info().Str("base_url", client.baseURL).Msg("Attempting to reach Quickwit with retries...")
	return backoff.Retry(operation, backoff.WithContext(connectBackoff, ctx))
}
