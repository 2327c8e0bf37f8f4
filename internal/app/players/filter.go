package players

import (
	"fmt"
	"sort"

	domainplayers "nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

// Fallback filter domains served when the table is empty, mirroring the
// defaults the UI controls were built around.
const (
	fallbackAgeMin    = 19
	fallbackAgeMax    = 40
	fallbackGamesMax  = 82
	fallbackPointsMax = 50.0
)

// FilterParams restricts the table. Zero values mean "no restriction" for
// position and team; ranges are closed intervals.
type FilterParams struct {
	Position  domainplayers.Position
	Team      string
	AgeMin    int
	AgeMax    int
	MinGames  int
	PointsMin float64
	PointsMax float64

	// Weights, when set, recomputes fantasy points on the returned copy
	// without touching the cached table.
	Weights *stats.ScoringWeights
}

// Validate rejects inverted or negative ranges at the query boundary.
func (f FilterParams) Validate() error {
	if f.AgeMin < 0 || f.AgeMax < 0 {
		return fmt.Errorf("%w: negative age bound", ErrInvalidFilter)
	}
	if f.AgeMax > 0 && f.AgeMin > f.AgeMax {
		return fmt.Errorf("%w: inverted age range", ErrInvalidFilter)
	}
	if f.MinGames < 0 {
		return fmt.Errorf("%w: negative minimum games", ErrInvalidFilter)
	}
	if f.PointsMin < 0 || f.PointsMax < 0 {
		return fmt.Errorf("%w: negative points bound", ErrInvalidFilter)
	}
	if f.PointsMax > 0 && f.PointsMin > f.PointsMax {
		return fmt.Errorf("%w: inverted points range", ErrInvalidFilter)
	}
	return nil
}

// Filter returns the rows matching params. An empty result is valid, not an
// error.
func (s *Service) Filter(params FilterParams) ([]domainplayers.Player, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	matched := make([]domainplayers.Player, 0)
	for _, p := range s.store.ListPlayers() {
		if !matches(p, params) {
			continue
		}
		matched = append(matched, p)
	}

	if params.Weights != nil {
		matched = stats.ApplyWeights(matched, *params.Weights)
	}
	return matched, nil
}

func matches(p domainplayers.Player, f FilterParams) bool {
	if f.Position != "" && p.Pos != f.Position {
		return false
	}
	if f.Team != "" && p.Team != f.Team {
		return false
	}
	if p.Age < f.AgeMin {
		return false
	}
	if f.AgeMax > 0 && p.Age > f.AgeMax {
		return false
	}
	if p.Games < f.MinGames {
		return false
	}
	if p.Points < f.PointsMin {
		return false
	}
	if f.PointsMax > 0 && p.Points > f.PointsMax {
		return false
	}
	return true
}

// FilterOptions reports the value domains present in the table, used to
// populate UI filter controls. An empty table yields safe fallback domains.
func (s *Service) FilterOptions() domainplayers.FilterOptions {
	rows := s.store.ListPlayers()
	if len(rows) == 0 {
		return domainplayers.FilterOptions{
			Positions: append([]domainplayers.Position(nil), domainplayers.Positions...),
			Teams:     []string{},
			AgeMin:    fallbackAgeMin,
			AgeMax:    fallbackAgeMax,
			GamesMin:  1,
			GamesMax:  fallbackGamesMax,
			PointsMax: fallbackPointsMax,
		}
	}

	positionSet := make(map[domainplayers.Position]bool)
	teamSet := make(map[string]bool)
	opts := domainplayers.FilterOptions{
		AgeMin:   rows[0].Age,
		AgeMax:   rows[0].Age,
		GamesMin: 1,
	}
	for _, p := range rows {
		positionSet[p.Pos] = true
		teamSet[p.Team] = true
		if p.Age < opts.AgeMin {
			opts.AgeMin = p.Age
		}
		if p.Age > opts.AgeMax {
			opts.AgeMax = p.Age
		}
		if p.Games > opts.GamesMax {
			opts.GamesMax = p.Games
		}
		if p.Points > opts.PointsMax {
			opts.PointsMax = p.Points
		}
	}

	for _, pos := range domainplayers.Positions {
		if positionSet[pos] {
			opts.Positions = append(opts.Positions, pos)
		}
	}
	opts.Teams = make([]string, 0, len(teamSet))
	for team := range teamSet {
		opts.Teams = append(opts.Teams, team)
	}
	sort.Strings(opts.Teams)
	return opts
}
