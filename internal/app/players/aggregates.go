package players

import (
	"fmt"
	"sort"

	domainplayers "nba-fantasy-service/internal/domain/players"
)

// TeamAggregate summarizes one team's fantasy production.
type TeamAggregate struct {
	Team               string  `json:"team"`
	AvgFantasyPoints   float64 `json:"avgFantasyPoints"`
	TotalFantasyPoints float64 `json:"totalFantasyPoints"`
	PlayerCount        int     `json:"playerCount"`
	AvgAge             float64 `json:"avgAge"`
	AvgGames           float64 `json:"avgGames"`
}

// PositionAggregate summarizes production at one position.
type PositionAggregate struct {
	Pos              domainplayers.Position `json:"pos"`
	AvgFantasyPoints float64                `json:"avgFantasyPoints"`
	AvgPoints        float64                `json:"avgPoints"`
	AvgRebounds      float64                `json:"avgRebounds"`
	AvgAssists       float64                `json:"avgAssists"`
	PlayerCount      int                    `json:"playerCount"`
}

// LeagueAverages holds league-wide per-player means.
type LeagueAverages struct {
	FantasyPoints float64 `json:"fantasyPoints"`
	Points        float64 `json:"points"`
	Rebounds      float64 `json:"rebounds"`
	Assists       float64 `json:"assists"`
	Steals        float64 `json:"steals"`
	Blocks        float64 `json:"blocks"`
	FGPct         float64 `json:"fgPct"`
	ThreePPct     float64 `json:"threePPct"`
	FTPct         float64 `json:"ftPct"`
}

// TeamStats aggregates fantasy production per team, best average first.
func (s *Service) TeamStats() []TeamAggregate {
	type teamTotals struct {
		fantasy float64
		age     int
		games   int
		count   int
	}
	totals := make(map[string]*teamTotals)
	for _, p := range s.store.ListPlayers() {
		t, ok := totals[p.Team]
		if !ok {
			t = &teamTotals{}
			totals[p.Team] = t
		}
		t.fantasy += p.FantasyPoints
		t.age += p.Age
		t.games += p.Games
		t.count++
	}

	aggregates := make([]TeamAggregate, 0, len(totals))
	for team, t := range totals {
		n := float64(t.count)
		aggregates = append(aggregates, TeamAggregate{
			Team:               team,
			AvgFantasyPoints:   t.fantasy / n,
			TotalFantasyPoints: t.fantasy,
			PlayerCount:        t.count,
			AvgAge:             float64(t.age) / n,
			AvgGames:           float64(t.games) / n,
		})
	}
	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].AvgFantasyPoints != aggregates[j].AvgFantasyPoints {
			return aggregates[i].AvgFantasyPoints > aggregates[j].AvgFantasyPoints
		}
		return aggregates[i].Team < aggregates[j].Team
	})
	return aggregates
}

// PositionStats aggregates production per position, in conventional
// position order.
func (s *Service) PositionStats() []PositionAggregate {
	totals := make(map[domainplayers.Position]*PositionAggregate)
	for _, p := range s.store.ListPlayers() {
		agg, ok := totals[p.Pos]
		if !ok {
			agg = &PositionAggregate{Pos: p.Pos}
			totals[p.Pos] = agg
		}
		agg.AvgFantasyPoints += p.FantasyPoints
		agg.AvgPoints += p.Points
		agg.AvgRebounds += p.Rebounds
		agg.AvgAssists += p.Assists
		agg.PlayerCount++
	}

	aggregates := make([]PositionAggregate, 0, len(totals))
	for _, pos := range domainplayers.Positions {
		agg, ok := totals[pos]
		if !ok {
			continue
		}
		n := float64(agg.PlayerCount)
		agg.AvgFantasyPoints /= n
		agg.AvgPoints /= n
		agg.AvgRebounds /= n
		agg.AvgAssists /= n
		aggregates = append(aggregates, *agg)
		delete(totals, pos)
	}
	// Rows with off-enumeration positions come last.
	rest := make([]PositionAggregate, 0, len(totals))
	for _, agg := range totals {
		n := float64(agg.PlayerCount)
		agg.AvgFantasyPoints /= n
		agg.AvgPoints /= n
		agg.AvgRebounds /= n
		agg.AvgAssists /= n
		rest = append(rest, *agg)
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Pos < rest[j].Pos })
	return append(aggregates, rest...)
}

// League returns league-wide per-player averages.
func (s *Service) League() LeagueAverages {
	rows := s.store.ListPlayers()
	if len(rows) == 0 {
		return LeagueAverages{}
	}

	var avg LeagueAverages
	for _, p := range rows {
		avg.FantasyPoints += p.FantasyPoints
		avg.Points += p.Points
		avg.Rebounds += p.Rebounds
		avg.Assists += p.Assists
		avg.Steals += p.Steals
		avg.Blocks += p.Blocks
		avg.FGPct += p.FGPct
		avg.ThreePPct += p.ThreePPct
		avg.FTPct += p.FTPct
	}
	n := float64(len(rows))
	avg.FantasyPoints /= n
	avg.Points /= n
	avg.Rebounds /= n
	avg.Assists /= n
	avg.Steals /= n
	avg.Blocks /= n
	avg.FGPct /= n
	avg.ThreePPct /= n
	avg.FTPct /= n
	return avg
}

// leaderMetrics whitelists the metrics a leaders query may order by.
var leaderMetrics = map[string]func(domainplayers.Player) float64{
	"fantasy":    func(p domainplayers.Player) float64 { return p.FantasyPoints },
	"points":     func(p domainplayers.Player) float64 { return p.Points },
	"rebounds":   func(p domainplayers.Player) float64 { return p.Rebounds },
	"assists":    func(p domainplayers.Player) float64 { return p.Assists },
	"steals":     func(p domainplayers.Player) float64 { return p.Steals },
	"blocks":     func(p domainplayers.Player) float64 { return p.Blocks },
	"efficiency": func(p domainplayers.Player) float64 { return p.Efficiency },
	"usage":      func(p domainplayers.Player) float64 { return p.UsageRate },
	"ts":         func(p domainplayers.Player) float64 { return p.TrueShooting },
	"gamescore":  func(p domainplayers.Player) float64 { return p.GameScore },
	"bpm":        func(p domainplayers.Player) float64 { return p.BoxPlusMinus },
}

// Leaders returns the top limit players by the named metric.
func (s *Service) Leaders(metric string, limit int) ([]domainplayers.Player, error) {
	value, ok := leaderMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	if limit <= 0 {
		limit = defaultLeadersLimit
	}

	rows := s.store.ListPlayers()
	sort.SliceStable(rows, func(i, j int) bool {
		vi, vj := value(rows[i]), value(rows[j])
		if vi != vj {
			return vi > vj
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

const defaultLeadersLimit = 10
