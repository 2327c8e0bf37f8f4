package xlsx

import (
	"context"
	"log/slog"
	"time"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/logging"
	"nba-fantasy-service/internal/metrics"
	"nba-fantasy-service/internal/providers"
	"nba-fantasy-service/internal/stats"
)

const (
	sourceStats        = "stats"
	sourceCoefficients = "coefficients"
)

// Config holds the workbook locations for the provider.
type Config struct {
	StatsPath         string
	StatsSheet        string
	CoefficientsPath  string
	CoefficientsSheet string
}

// Provider reads the season stats and BPM coefficient workbooks with
// excelize. Reads are stateless; each fetch reopens the file so a refreshed
// workbook is picked up on the next cycle.
type Provider struct {
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a Provider.
func New(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Provider {
	return &Provider{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
	}
}

// FetchPlayers reads the raw season table, dropping rows that are missing
// the required identity or stat fields.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, dropped, err := readStatsWorkbook(p.cfg.StatsPath, p.cfg.StatsSheet)
	p.metrics.RecordSourceAttempt(sourceStats, time.Since(start), err)
	if err != nil {
		return nil, &providers.SourceError{Source: sourceStats, Path: p.cfg.StatsPath, Err: err}
	}

	p.metrics.RecordRowsDropped(sourceStats, dropped)
	if dropped > 0 {
		logging.Warn(p.logger, "dropped rows missing required fields",
			slog.String(logging.FieldSource, sourceStats),
			slog.Int(logging.FieldDropped, dropped),
		)
	}
	logging.Info(p.logger, "loaded season stats",
		slog.String(logging.FieldSource, sourceStats),
		slog.Int(logging.FieldCount, len(rows)),
	)
	return rows, nil
}

// FetchCoefficients reads the BPM coefficient workbook. Callers are expected
// to fall back to the embedded defaults when this fails.
func (p *Provider) FetchCoefficients(ctx context.Context) (stats.CoefficientSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	set, err := readCoefficientWorkbook(p.cfg.CoefficientsPath, p.cfg.CoefficientsSheet)
	p.metrics.RecordSourceAttempt(sourceCoefficients, time.Since(start), err)
	if err != nil {
		return nil, &providers.SourceError{Source: sourceCoefficients, Path: p.cfg.CoefficientsPath, Err: err}
	}
	return set, nil
}
