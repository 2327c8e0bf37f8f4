package xlsx

// Column headers expected in the season stats workbook, lowercased for
// matching. The layout follows the standard box-score export.
const (
	colPlayer      = "player"
	colTeam        = "team"
	colPos         = "pos"
	colAge         = "age"
	colGames       = "g"
	colMinutes     = "mp"
	colPoints      = "pts"
	colRebounds    = "trb"
	colOffRebounds = "orb"
	colDefRebounds = "drb"
	colAssists     = "ast"
	colSteals      = "stl"
	colBlocks      = "blk"
	colTurnovers   = "tov"
	colFouls       = "pf"
	colFGMade      = "fg"
	colFGAttempted = "fga"
	colThreePMade  = "3p"
	colFTMade      = "ft"
	colFTAttempted = "fta"
	colFGPct       = "fg%"
	colThreePPct   = "3p%"
	colFTPct       = "ft%"
)

// requiredColumns must all be present in the header row for the sheet to be
// treated as the stats table.
var requiredColumns = []string{colPlayer, colTeam, colPos, colPoints, colRebounds, colAssists}
