package xlsx

import (
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

var errNoCoefficientSheet = errors.New("no sheet with coefficient headers found")

// Column headers expected in the coefficient workbook. The first column
// holds a position label; rows are matched by position substring.
var coefficientColumns = []string{colPoints, colThreePMade, colAssists, colTurnovers, colOffRebounds, colDefRebounds, colSteals, colBlocks, colFouls, colFGAttempted, colFTAttempted}

// positionMatchOrder checks multi-letter codes before "C" so labels like
// "Center" or "PG/SG" resolve to the most specific position.
var positionMatchOrder = []players.Position{
	players.PointGuard,
	players.ShootingGuard,
	players.SmallForward,
	players.PowerForward,
	players.Center,
}

// readCoefficientWorkbook parses the BPM coefficient workbook into a
// coefficient set. A row contributes when its label cell contains a
// recognizable position code.
func readCoefficientWorkbook(path, sheet string) (stats.CoefficientSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := coefficientRows(f, sheet)
	if err != nil {
		return nil, err
	}

	headerIdx, columns := findHeader(rows, coefficientColumns)
	if headerIdx < 0 {
		return nil, errNoCoefficientSheet
	}

	set := make(stats.CoefficientSet)
	for _, row := range rows[headerIdx+1:] {
		if len(row) == 0 {
			continue
		}
		pos, ok := matchPosition(row[0])
		if !ok {
			continue
		}
		set[pos] = parseCoefficientRow(row, columns)
	}
	if len(set) == 0 {
		return nil, errNoCoefficientSheet
	}
	return set, nil
}

func coefficientRows(f *excelize.File, sheet string) ([][]string, error) {
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
		if idx, _ := findHeader(rows, coefficientColumns); idx >= 0 {
			return rows, nil
		}
	}
	return nil, errNoCoefficientSheet
}

func matchPosition(label string) (players.Position, bool) {
	upper := strings.ToUpper(strings.TrimSpace(label))
	if upper == "" {
		return "", false
	}
	for _, pos := range positionMatchOrder {
		if strings.Contains(upper, string(pos)) {
			return pos, true
		}
	}
	return "", false
}

func parseCoefficientRow(row []string, columns map[string]int) stats.Coefficients {
	value := func(name string) float64 {
		val, _ := floatCell(row, columns, name)
		return val
	}
	return stats.Coefficients{
		Points:      value(colPoints),
		ThreePMade:  value(colThreePMade),
		Assists:     value(colAssists),
		Turnovers:   value(colTurnovers),
		OffRebounds: value(colOffRebounds),
		DefRebounds: value(colDefRebounds),
		Steals:      value(colSteals),
		Blocks:      value(colBlocks),
		Fouls:       value(colFouls),
		FGAttempted: value(colFGAttempted),
		FTAttempted: value(colFTAttempted),
	}
}
