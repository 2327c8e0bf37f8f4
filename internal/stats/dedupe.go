package stats

import (
	"fmt"

	"nba-fantasy-service/internal/domain/players"
)

// TieBreak selects which stint survives for a multi-team player when the
// source has no combined-team row.
type TieBreak string

const (
	// TieBreakPoints keeps the stint with the highest scoring average.
	TieBreakPoints TieBreak = "points"
	// TieBreakFantasy keeps the stint with the highest recomputed fantasy
	// score. Retained as an alternate policy from an earlier revision.
	TieBreakFantasy TieBreak = "fantasy"
)

// Valid reports whether tb names a known tie-break policy.
func (tb TieBreak) Valid() bool {
	return tb == TieBreakPoints || tb == TieBreakFantasy
}

// Deduplicate collapses the raw table so each player name appears exactly
// once. Players traded mid-season arrive as one row per team plus, usually,
// a combined-team aggregate row; the aggregate wins when present, otherwise
// the tie-break policy picks a single stint. Single-row players pass through
// untouched and first-seen input order is preserved.
func Deduplicate(rows []players.Player, tb TieBreak, w ScoringWeights) ([]players.Player, error) {
	if !tb.Valid() {
		tb = TieBreakPoints
	}

	counts := make(map[string]int, len(rows))
	for i, row := range rows {
		if row.Name == "" || row.Team == "" {
			return nil, fmt.Errorf("row %d: %w", i, ErrMissingIdentity)
		}
		counts[row.Name]++
	}

	chosen := make(map[string]players.Player)
	for _, row := range rows {
		if counts[row.Name] == 1 {
			continue
		}
		current, seen := chosen[row.Name]
		if !seen {
			chosen[row.Name] = row
			continue
		}
		if current.CombinedTeamRow() {
			continue
		}
		if row.CombinedTeamRow() || tieBreakValue(row, tb, w) > tieBreakValue(current, tb, w) {
			chosen[row.Name] = row
		}
	}

	out := make([]players.Player, 0, len(counts))
	emitted := make(map[string]bool, len(counts))
	for _, row := range rows {
		if emitted[row.Name] {
			continue
		}
		emitted[row.Name] = true
		if counts[row.Name] == 1 {
			out = append(out, row)
			continue
		}
		out = append(out, chosen[row.Name])
	}
	return out, nil
}

func tieBreakValue(p players.Player, tb TieBreak, w ScoringWeights) float64 {
	if tb == TieBreakFantasy {
		if w.IsZero() {
			w = DefaultScoringWeights()
		}
		return FantasyPoints(p, w)
	}
	return p.Points
}
