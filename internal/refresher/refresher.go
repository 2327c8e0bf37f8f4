package refresher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/logging"
	"nba-fantasy-service/internal/metrics"
	"nba-fantasy-service/internal/providers"
	"nba-fantasy-service/internal/stats"
)

const defaultInterval = 15 * time.Minute

// Sink receives the enriched table after a successful pipeline run.
type Sink interface {
	SetPlayers(rows []players.Player, at time.Time)
}

// Refresher rebuilds the enriched table on an interval. A failed cycle
// leaves the previously published table untouched, so readers keep the
// last-good data.
type Refresher struct {
	provider providers.StatsProvider
	pipeline *stats.Pipeline
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	// refreshMu serializes refresh cycles: the ticker goroutine and the
	// admin-triggered RefreshNow both rebuild through the shared pipeline.
	refreshMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the refresher has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults.
func New(provider providers.StatsProvider, pipeline *stats.Pipeline, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		provider: provider,
		pipeline: pipeline,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.logInfo("refresher started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial run to warm the table on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// RefreshNow runs a single refresh cycle synchronously. Used by the admin
// endpoint to force a reload without waiting for the ticker.
func (r *Refresher) RefreshNow(ctx context.Context) error {
	return r.refreshOnce(ctx)
}

func (r *Refresher) refreshOnce(ctx context.Context) error {
	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	start := time.Now()
	r.recordAttempt(start)

	err := r.rebuild(ctx)
	if r.metrics != nil {
		r.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		r.logError("refresh failed, keeping last-good table", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		r.recordFailure(err, start)
		return err
	}
	r.recordSuccess(start)
	return nil
}

func (r *Refresher) rebuild(ctx context.Context) error {
	// Coefficient source failures are non-fatal: the embedded defaults keep
	// the BPM column populated.
	coeffs, err := r.provider.FetchCoefficients(ctx)
	if err != nil {
		r.logWarn("coefficient source unavailable, using built-in defaults", "error", err)
		coeffs = stats.DefaultCoefficients()
	}
	r.pipeline.SetCoefficients(coeffs)

	rows, err := r.provider.FetchPlayers(ctx)
	if err != nil {
		return err
	}

	enriched, err := r.pipeline.Run(rows)
	if err != nil {
		return err
	}

	r.sink.SetPlayers(enriched, r.now())
	r.logInfo("refreshed player table",
		logging.FieldCount, len(enriched),
	)
	return nil
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Refresher) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

func (r *Refresher) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
