package stats

import "nba-fantasy-service/internal/domain/players"

// Classify assigns an archetype from position plus simple stat thresholds.
// Rules are evaluated in strict priority order per position group; the first
// match wins. Every row receives exactly one label.
func Classify(p players.Player) players.Archetype {
	switch p.Pos {
	case players.PointGuard, players.ShootingGuard:
		switch {
		case p.Assists > 5:
			return players.PlaymakingGuard
		case p.Steals > 1:
			return players.DefensiveGuard
		default:
			return players.ScoringGuard
		}
	case players.SmallForward:
		switch {
		case p.Steals > 1:
			return players.WingDefender
		case p.Points > 10:
			return players.WingScorer
		default:
			return players.ThreeAndDPlayer
		}
	case players.PowerForward, players.Center:
		switch {
		case p.Assists > 3:
			return players.PlaymakingBig
		case p.Blocks > 1:
			return players.RimProtector
		default:
			return players.GlassCleaner
		}
	default:
		return players.OtherArchetype
	}
}
