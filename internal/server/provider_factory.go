package server

import (
	"log/slog"
	"strings"

	"nba-fantasy-service/internal/config"
	"nba-fantasy-service/internal/metrics"
	"nba-fantasy-service/internal/providers"
	"nba-fantasy-service/internal/providers/fixture"
	"nba-fantasy-service/internal/providers/xlsx"
)

type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

// build selects the configured stats source. Unknown names fall back to the
// fixture roster so the service always boots with data.
func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	switch strings.ToLower(cfg.Provider) {
	case "xlsx", "excel":
		inner := xlsx.New(xlsx.Config{
			StatsPath:         cfg.Source.StatsPath,
			StatsSheet:        cfg.Source.StatsSheet,
			CoefficientsPath:  cfg.Source.CoefficientsPath,
			CoefficientsSheet: cfg.Source.CoefficientsSheet,
		}, f.logger, f.metrics)
		return providers.NewRetryingProvider(inner, f.logger, 0, 0)
	default:
		if f.logger != nil && !strings.EqualFold(cfg.Provider, "fixture") {
			f.logger.Warn("unknown provider, using fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
