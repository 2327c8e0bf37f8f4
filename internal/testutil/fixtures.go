package testutil

import (
	"nba-fantasy-service/internal/domain/players"
)

// SamplePlayer returns a minimal enriched player fixture with the provided name.
func SamplePlayer(name string) players.Player {
	return players.Player{
		Name:          name,
		Team:          "BOS",
		Pos:           players.PointGuard,
		Age:           27,
		Games:         70,
		Minutes:       32.0,
		Points:        20.0,
		Rebounds:      5.0,
		Assists:       6.0,
		Steals:        1.1,
		Blocks:        0.4,
		Turnovers:     2.2,
		FGMade:        7.0,
		FGAttempted:   15.0,
		ThreePMade:    2.0,
		FTMade:        4.0,
		FTAttempted:   4.5,
		FGPct:         0.467,
		ThreePPct:     0.36,
		FTPct:         0.889,
		FantasyPoints: 40.0,
		Archetype:     players.PlaymakingGuard,
	}
}

// RawSeasonRows returns an unprocessed table exercising the duplicate
// resolver: one single-stint player plus one trade with a combined-team row.
func RawSeasonRows() []players.Player {
	solo := SamplePlayer("Solo Player")
	solo.FantasyPoints = 0
	solo.Archetype = ""

	stintA := SamplePlayer("Traded Player")
	stintA.Team = "CHI"
	stintA.Points = 12.0
	stintA.FantasyPoints = 0
	stintA.Archetype = ""

	stintB := stintA
	stintB.Team = "PHX"
	stintB.Points = 15.0

	combined := stintA
	combined.Team = "2TM"
	combined.Points = 13.7

	return []players.Player{solo, stintA, stintB, combined}
}
