package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	AdminToken      string
	Source          SourceConfig
	Ranking         RankingConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		AdminToken:      envOrDefault(envAdminToken, ""),
		Source:          loadSource(),
		Ranking:         loadRanking(),
		Metrics:         loadMetrics(),
	}
}
