package xlsx

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/metrics"
	"nba-fantasy-service/internal/providers"
)

var statsHeader = []interface{}{
	"Player", "Team", "Pos", "Age", "G", "MP",
	"FG", "FGA", "FG%", "3P", "3P%", "FT", "FTA", "FT%",
	"ORB", "DRB", "TRB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
}

func statsRow(name, team, pos string, pts float64) []interface{} {
	return []interface{}{
		name, team, pos, 27, 70, 33.5,
		7.5, 16.0, 46.9, 2.1, 37.0, 4.2, 4.8, 87.5,
		1.2, 4.4, 5.6, 6.1, 1.3, 0.5, 2.4, 2.2, pts,
	}
}

func writeStatsWorkbook(t *testing.T, sheet string, rows ...[]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("create sheet: %v", err)
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &statsHeader); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "stats.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func writeCoefficientWorkbook(t *testing.T, labels []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	header := []interface{}{"Position", "PTS", "3P", "AST", "TOV", "ORB", "DRB", "STL", "BLK", "PF", "FGA", "FTA"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i, label := range labels {
		row := []interface{}{label, 0.85, 0.4, 0.7, -0.8, 0.5, 0.2, 1.6, 0.7, -0.25, -0.55, -0.22}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "coeffs.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestFetchPlayersReadsWorkbook(t *testing.T) {
	path := writeStatsWorkbook(t, "Sheet1",
		statsRow("Dana Whitfield", "BOS", "PG", 22.5),
		statsRow("Marcus Vale", "LAL", "SG", 18.4),
	)

	p := New(Config{StatsPath: path}, nil, nil)
	rows, err := p.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	got := rows[0]
	if got.Name != "Dana Whitfield" || got.Team != "BOS" || got.Pos != players.PointGuard {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.Points != 22.5 || got.Rebounds != 5.6 || got.Assists != 6.1 {
		t.Fatalf("unexpected stat fields: %+v", got)
	}
	// Percent-form shooting splits normalize to fractions.
	if math.Abs(got.FGPct-0.469) > 1e-9 || math.Abs(got.FTPct-0.875) > 1e-9 {
		t.Fatalf("expected normalized percentages, got fg=%v ft=%v", got.FGPct, got.FTPct)
	}
}

func TestFetchPlayersFindsSheetByHeaders(t *testing.T) {
	path := writeStatsWorkbook(t, "Per Game Stats", statsRow("Dana Whitfield", "BOS", "PG", 22.5))

	// No sheet configured; the reader must locate it by scanning headers.
	p := New(Config{StatsPath: path}, nil, nil)
	rows, err := p.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestFetchPlayersDropsIncompleteRows(t *testing.T) {
	missingName := statsRow("", "BOS", "PG", 10.0)
	missingPoints := statsRow("No Points", "LAL", "SG", 0)
	missingPoints[len(missingPoints)-1] = "n/a"

	path := writeStatsWorkbook(t, "Sheet1",
		statsRow("Keeper", "MIL", "SF", 20.8),
		missingName,
		missingPoints,
	)

	recorder := metrics.NewRecorder()
	p := New(Config{StatsPath: path}, nil, recorder)
	rows, err := p.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Keeper" {
		t.Fatalf("expected only the complete row, got %+v", rows)
	}
	if got := recorder.RowsDropped("stats"); got != 2 {
		t.Fatalf("expected 2 dropped rows recorded, got %d", got)
	}
	if recorder.SourceCalls("stats") != 1 || recorder.SourceErrors("stats") != 0 {
		t.Fatalf("unexpected source counters: %+v", recorder.Snapshot("stats"))
	}
}

func TestFetchPlayersMissingFile(t *testing.T) {
	recorder := metrics.NewRecorder()
	p := New(Config{StatsPath: filepath.Join(t.TempDir(), "absent.xlsx")}, nil, recorder)

	_, err := p.FetchPlayers(context.Background())
	if err == nil {
		t.Fatal("expected error for missing workbook")
	}
	srcErr, ok := providers.AsSourceError(err)
	if !ok || srcErr.Source != "stats" {
		t.Fatalf("expected stats SourceError, got %v", err)
	}
	if recorder.SourceErrors("stats") != 1 {
		t.Fatalf("expected recorded source error, got %d", recorder.SourceErrors("stats"))
	}
}

func TestFetchPlayersNoStatsSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	header := []interface{}{"Unrelated", "Columns"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	path := filepath.Join(t.TempDir(), "wrong.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	p := New(Config{StatsPath: path}, nil, nil)
	_, err := p.FetchPlayers(context.Background())
	if !errors.Is(err, errNoStatsSheet) {
		t.Fatalf("expected errNoStatsSheet, got %v", err)
	}
}

func TestFetchPlayersCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Config{StatsPath: "irrelevant.xlsx"}, nil, nil)
	if _, err := p.FetchPlayers(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFetchCoefficientsReadsWorkbook(t *testing.T) {
	path := writeCoefficientWorkbook(t, []string{"PG", "SG", "SF", "PF", "Center"})

	p := New(Config{CoefficientsPath: path}, nil, nil)
	set, err := p.FetchCoefficients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(set))
	}
	row, ok := set[players.Center]
	if !ok {
		t.Fatal("expected Center row from label substring match")
	}
	if row.Points != 0.85 || row.Turnovers != -0.8 {
		t.Fatalf("unexpected coefficient values: %+v", row)
	}
}

func TestFetchCoefficientsNoRecognizableRows(t *testing.T) {
	path := writeCoefficientWorkbook(t, []string{"???"})

	p := New(Config{CoefficientsPath: path}, nil, nil)
	_, err := p.FetchCoefficients(context.Background())
	if err == nil {
		t.Fatal("expected error when no row matches a position")
	}
	srcErr, ok := providers.AsSourceError(err)
	if !ok || srcErr.Source != "coefficients" {
		t.Fatalf("expected coefficients SourceError, got %v", err)
	}
}
