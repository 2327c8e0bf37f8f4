package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/logging"
	"nba-fantasy-service/internal/stats"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a StatsProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       StatsProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var rows []players.Player
	err := r.withRetries(ctx, "players", func() error {
		var fetchErr error
		rows, fetchErr = r.inner.FetchPlayers(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *retryingProvider) FetchCoefficients(ctx context.Context) (stats.CoefficientSet, error) {
	var coeffs stats.CoefficientSet
	err := r.withRetries(ctx, "coefficients", func() error {
		var fetchErr error
		coeffs, fetchErr = r.inner.FetchCoefficients(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return coeffs, nil
}

func (r *retryingProvider) withRetries(ctx context.Context, what string, fetch func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fetch()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "source fetch retry", "what", what, "attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "source fetch failed", "what", what, "attempts", r.maxAttempts, "error", lastErr)
	return lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
