package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envAdminToken      = "ADMIN_TOKEN"
	envStatsFile       = "STATS_FILE"
	envStatsSheet      = "STATS_SHEET"
	envCoeffsFile      = "BPM_COEFFS_FILE"
	envCoeffsSheet     = "BPM_COEFFS_SHEET"
	envMinGames        = "RANK_MIN_GAMES"
	envRankStrategy    = "RANK_STRATEGY"
	envDedupeTieBreak  = "DEDUPE_TIEBREAK"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The season table changes at most a few times a day; refreshing every
	// few minutes keeps the cache warm without rereading the workbook on
	// every request.
	defaultRefreshInterval = 5 * Duration(time.Minute)
	defaultProvider        = "fixture"
	defaultStatsFile       = "2024NBAplayerStats.xlsx"
	defaultCoeffsFile      = "bpm_coefficients.xlsx"
	defaultMinGames        = 20
	defaultRankStrategy    = "fantasy"
	defaultDedupeTieBreak  = "points"
	defaultMetricsPort     = "9090"
)
