package config

// RankingConfig selects the default ranking behavior and the duplicate
// resolver's tie-break policy.
type RankingConfig struct {
	MinGames int
	Strategy string
	TieBreak string
}

func loadRanking() RankingConfig {
	return RankingConfig{
		MinGames: intEnvOrDefault(envMinGames, defaultMinGames),
		Strategy: envOrDefault(envRankStrategy, defaultRankStrategy),
		TieBreak: envOrDefault(envDedupeTieBreak, defaultDedupeTieBreak),
	}
}
