package players

import "strings"

// Position is one of the five canonical position labels from the source table.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists the canonical positions in conventional order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Known reports whether the position is one of the five canonical labels.
func (p Position) Known() bool {
	switch p {
	case PointGuard, ShootingGuard, SmallForward, PowerForward, Center:
		return true
	}
	return false
}

// Archetype is the categorical role label assigned by the classifier.
type Archetype string

const (
	PlaymakingGuard Archetype = "Playmaking Guard"
	DefensiveGuard  Archetype = "Defensive Guard"
	ScoringGuard    Archetype = "Scoring Guard"
	WingDefender    Archetype = "Wing Defender"
	WingScorer      Archetype = "Wing Scorer"
	ThreeAndDPlayer Archetype = "3&D Player"
	PlaymakingBig   Archetype = "Playmaking Big"
	RimProtector    Archetype = "Rim Protector"
	GlassCleaner    Archetype = "Glass Cleaner"
	OtherArchetype  Archetype = "Other"
)

// multiTeamMarker appears in the team field of a season-combined row
// for players traded mid-season (e.g. "2TM", "3TM").
const multiTeamMarker = "TM"

// Player is the canonical enriched player row exposed by the service.
// Raw totals follow the source convention of per-game averages; shooting
// percentages are fractions in [0,1].
type Player struct {
	Name  string   `json:"name"`
	Team  string   `json:"team"`
	Pos   Position `json:"pos"`
	Age   int      `json:"age"`
	Games int      `json:"games"`

	Minutes     float64 `json:"minutes"`
	Points      float64 `json:"points"`
	Rebounds    float64 `json:"rebounds"`
	OffRebounds float64 `json:"offRebounds"`
	DefRebounds float64 `json:"defRebounds"`
	Assists     float64 `json:"assists"`
	Steals      float64 `json:"steals"`
	Blocks      float64 `json:"blocks"`
	Turnovers   float64 `json:"turnovers"`
	Fouls       float64 `json:"fouls"`
	FGMade      float64 `json:"fgMade"`
	FGAttempted float64 `json:"fgAttempted"`
	ThreePMade  float64 `json:"threePMade"`
	FTMade      float64 `json:"ftMade"`
	FTAttempted float64 `json:"ftAttempted"`
	FGPct       float64 `json:"fgPct"`
	ThreePPct   float64 `json:"threePPct"`
	FTPct       float64 `json:"ftPct"`

	FantasyPoints  float64 `json:"fantasyPoints"`
	Efficiency     float64 `json:"efficiency"`
	UsageRate      float64 `json:"usageRate"`
	TrueShooting   float64 `json:"trueShooting"`
	EffectiveFG    float64 `json:"effectiveFg"`
	FreeThrowRate  float64 `json:"freeThrowRate"`
	AssistTurnover float64 `json:"assistTurnover"`
	AssistPct      float64 `json:"assistPct"`
	TurnoverPct    float64 `json:"turnoverPct"`
	GameScore      float64 `json:"gameScore"`
	BoxPlusMinus   float64 `json:"boxPlusMinus"`

	Archetype Archetype `json:"archetype"`
}

// CombinedTeamRow reports whether this row is a season aggregate across
// multiple teams rather than a single-team stint.
func (p Player) CombinedTeamRow() bool {
	return strings.Contains(p.Team, multiTeamMarker)
}

// TableResponse is the payload returned by /players.
type TableResponse struct {
	LoadedAt string   `json:"loadedAt"`
	Count    int      `json:"count"`
	Players  []Player `json:"players"`
}

// FilterOptions describes the value domains available for UI filter controls.
type FilterOptions struct {
	Positions []Position `json:"positions"`
	Teams     []string   `json:"teams"`
	AgeMin    int        `json:"ageMin"`
	AgeMax    int        `json:"ageMax"`
	GamesMin  int        `json:"gamesMin"`
	GamesMax  int        `json:"gamesMax"`
	PointsMin float64    `json:"pointsMin"`
	PointsMax float64    `json:"pointsMax"`
}
