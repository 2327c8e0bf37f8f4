package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	rowsDropped     int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about source reads and
// refresh cycles. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordSourceAttempt increments counters for a source read and stores the
// last observed latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordSourceAttempt(source, duration, err)
	}
}

// RecordRowsDropped tracks rows discarded during load for missing required
// fields.
func (r *Recorder) RecordRowsDropped(source string, n int) {
	if r == nil || n <= 0 {
		return
	}

	stats := r.ensureStats(source)
	stats.rowsDropped += n
	if r.otel != nil {
		r.otel.recordRowsDropped(source, n)
	}
}

// RecordRefreshCycle tracks pipeline refresh cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one source.
type Snapshot struct {
	Calls           int
	Errors          int
	RowsDropped     int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RowsDropped:     stats.rowsDropped,
		LastCallLatency: stats.lastCallLatency,
	}
}

// SourceCalls returns the total read attempts recorded for a source.
func (r *Recorder) SourceCalls(source string) int {
	return r.Snapshot(source).Calls
}

// SourceErrors returns the total failed reads recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// RowsDropped returns the total rows discarded for a source.
func (r *Recorder) RowsDropped(source string) int {
	return r.Snapshot(source).RowsDropped
}

// LastCallLatency returns the last recorded latency for a source read.
func (r *Recorder) LastCallLatency(source string) time.Duration {
	return r.Snapshot(source).LastCallLatency
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
