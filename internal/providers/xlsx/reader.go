package xlsx

import (
	"errors"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"nba-fantasy-service/internal/domain/players"
)

var errNoStatsSheet = errors.New("no sheet with player stat headers found")

// readStatsWorkbook parses the season stats workbook into raw player rows.
// Rows missing Player, PTS, TRB, or AST are dropped and counted; everything
// else is passed through for the pipeline to process.
func readStatsWorkbook(path, sheet string) ([]players.Player, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	rows, err := statsRows(f, sheet)
	if err != nil {
		return nil, 0, err
	}

	headerIdx, columns := findHeader(rows, requiredColumns)
	if headerIdx < 0 {
		return nil, 0, errNoStatsSheet
	}

	var (
		parsed  []players.Player
		dropped int
	)
	for _, row := range rows[headerIdx+1:] {
		player, ok := parsePlayerRow(row, columns)
		if !ok {
			if !blankRow(row) {
				dropped++
			}
			continue
		}
		parsed = append(parsed, player)
	}
	return parsed, dropped, nil
}

// statsRows returns the cell grid of the configured sheet, falling back to a
// scan for a sheet that carries the expected headers.
func statsRows(f *excelize.File, sheet string) ([][]string, error) {
	if sheet != "" {
		rows, err := f.GetRows(sheet)
		if err == nil {
			return rows, nil
		}
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if idx, _ := findHeader(rows, requiredColumns); idx >= 0 {
			return rows, nil
		}
	}
	return nil, errNoStatsSheet
}

// findHeader locates the header row containing all required column names and
// returns its index plus a lowercased header-to-column map.
func findHeader(rows [][]string, required []string) (int, map[string]int) {
	for i, row := range rows {
		columns := make(map[string]int, len(row))
		for j, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name == "" {
				continue
			}
			if _, exists := columns[name]; !exists {
				columns[name] = j
			}
		}
		if containsAll(columns, required) {
			return i, columns
		}
	}
	return -1, nil
}

func containsAll(columns map[string]int, required []string) bool {
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return false
		}
	}
	return true
}

func parsePlayerRow(row []string, columns map[string]int) (players.Player, bool) {
	name := textCell(row, columns, colPlayer)
	if name == "" {
		return players.Player{}, false
	}
	pts, ptsOK := floatCell(row, columns, colPoints)
	trb, trbOK := floatCell(row, columns, colRebounds)
	ast, astOK := floatCell(row, columns, colAssists)
	if !ptsOK || !trbOK || !astOK {
		return players.Player{}, false
	}

	p := players.Player{
		Name:     name,
		Team:     textCell(row, columns, colTeam),
		Pos:      players.Position(textCell(row, columns, colPos)),
		Age:      intCellOr(row, columns, colAge, 0),
		Games:    intCellOr(row, columns, colGames, 0),
		Points:   pts,
		Rebounds: trb,
		Assists:  ast,
	}
	p.Minutes, _ = floatCell(row, columns, colMinutes)
	p.OffRebounds, _ = floatCell(row, columns, colOffRebounds)
	p.DefRebounds, _ = floatCell(row, columns, colDefRebounds)
	p.Steals, _ = floatCell(row, columns, colSteals)
	p.Blocks, _ = floatCell(row, columns, colBlocks)
	p.Turnovers, _ = floatCell(row, columns, colTurnovers)
	p.Fouls, _ = floatCell(row, columns, colFouls)
	p.FGMade, _ = floatCell(row, columns, colFGMade)
	p.FGAttempted, _ = floatCell(row, columns, colFGAttempted)
	p.ThreePMade, _ = floatCell(row, columns, colThreePMade)
	p.FTMade, _ = floatCell(row, columns, colFTMade)
	p.FTAttempted, _ = floatCell(row, columns, colFTAttempted)
	p.FGPct = pctCell(row, columns, colFGPct)
	p.ThreePPct = pctCell(row, columns, colThreePPct)
	p.FTPct = pctCell(row, columns, colFTPct)
	return p, true
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func textCell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func floatCell(row []string, columns map[string]int, name string) (float64, bool) {
	raw := textCell(row, columns, name)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

func intCellOr(row []string, columns map[string]int, name string, fallback int) int {
	val, ok := floatCell(row, columns, name)
	if !ok {
		return fallback
	}
	return int(val)
}

// pctCell reads a shooting percentage, accepting either fraction (0.512) or
// percent (51.2) form.
func pctCell(row []string, columns map[string]int, name string) float64 {
	val, ok := floatCell(row, columns, name)
	if !ok {
		return 0
	}
	if val > 1 {
		return val / 100
	}
	return val
}
