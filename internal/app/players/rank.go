package players

import (
	"fmt"
	"sort"

	domainplayers "nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

// RankStrategy names the ordering key for rankings.
type RankStrategy string

const (
	// RankByFantasy orders by fantasy points alone (current policy).
	RankByFantasy RankStrategy = "fantasy"
	// RankByWeightedScore orders by the blended score from an earlier
	// revision: 0.4·fantasy + 0.3·efficiency + 0.2·usage + 0.1·shooting avg.
	RankByWeightedScore RankStrategy = "weighted"
)

// Valid reports whether st names a known strategy.
func (st RankStrategy) Valid() bool {
	return st == RankByFantasy || st == RankByWeightedScore
}

// RankParams controls a ranking query.
type RankParams struct {
	MinGames int
	Strategy RankStrategy
	// Weights, when set, recomputes fantasy points before ranking.
	Weights *stats.ScoringWeights
}

// RankedPlayer is one row of a ranking, with its dense 1..N rank and the
// score the strategy ordered by.
type RankedPlayer struct {
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
	domainplayers.Player
}

// Rank orders players meeting the minimum-games threshold by the chosen
// strategy, best first. Ties break on name so repeated invocations over the
// same table produce identical output.
func (s *Service) Rank(params RankParams) ([]RankedPlayer, error) {
	if params.MinGames < 0 {
		return nil, fmt.Errorf("%w: negative minimum games", ErrInvalidFilter)
	}
	strategy := params.Strategy
	if strategy == "" {
		strategy = RankByFantasy
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown ranking strategy %q", ErrInvalidFilter, params.Strategy)
	}

	eligible := make([]domainplayers.Player, 0)
	for _, p := range s.store.ListPlayers() {
		if p.Games >= params.MinGames {
			eligible = append(eligible, p)
		}
	}
	if params.Weights != nil {
		eligible = stats.ApplyWeights(eligible, *params.Weights)
	}

	ranked := make([]RankedPlayer, len(eligible))
	for i, p := range eligible {
		ranked[i] = RankedPlayer{Score: rankScore(p, strategy), Player: p}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

// PositionRanking ranks the players at a single position by fantasy points.
func (s *Service) PositionRanking(pos domainplayers.Position) []RankedPlayer {
	atPosition := make([]domainplayers.Player, 0)
	for _, p := range s.store.ListPlayers() {
		if p.Pos == pos {
			atPosition = append(atPosition, p)
		}
	}
	sortByFantasyDesc(atPosition)

	ranked := make([]RankedPlayer, len(atPosition))
	for i, p := range atPosition {
		ranked[i] = RankedPlayer{Rank: i + 1, Score: p.FantasyPoints, Player: p}
	}
	return ranked
}

func rankScore(p domainplayers.Player, strategy RankStrategy) float64 {
	if strategy == RankByWeightedScore {
		shootingAvg := (p.FGPct + p.ThreePPct + p.FTPct) / 3
		return p.FantasyPoints*0.4 + p.Efficiency*0.3 + p.UsageRate*0.2 + shootingAvg*0.1
	}
	return p.FantasyPoints
}
