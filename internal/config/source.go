package config

// SourceConfig locates the two tabular inputs.
type SourceConfig struct {
	StatsPath         string
	StatsSheet        string
	CoefficientsPath  string
	CoefficientsSheet string
}

func loadSource() SourceConfig {
	return SourceConfig{
		StatsPath:         envOrDefault(envStatsFile, defaultStatsFile),
		StatsSheet:        envOrDefault(envStatsSheet, ""),
		CoefficientsPath:  envOrDefault(envCoeffsFile, defaultCoeffsFile),
		CoefficientsSheet: envOrDefault(envCoeffsSheet, ""),
	}
}
