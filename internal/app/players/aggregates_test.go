package players

import (
	"errors"
	"math"
	"testing"

	domainplayers "nba-fantasy-service/internal/domain/players"
)

func aggregateRoster() []domainplayers.Player {
	a := enriched("Alpha", "BOS", domainplayers.PointGuard, 30.0)
	a.Age = 24
	a.Games = 60
	a.Points = 18.0
	a.Rebounds = 4.0
	a.Assists = 7.0

	b := enriched("Beta", "BOS", domainplayers.Center, 50.0)
	b.Age = 30
	b.Games = 70
	b.Points = 22.0
	b.Rebounds = 11.0
	b.Assists = 2.0

	c := enriched("Gamma", "LAL", domainplayers.PointGuard, 36.0)
	c.Age = 28
	c.Games = 65
	c.Points = 20.0
	c.Rebounds = 5.0
	c.Assists = 8.0

	return []domainplayers.Player{a, b, c}
}

func TestTeamStats(t *testing.T) {
	svc := loadedService(aggregateRoster()...)

	got := svc.TeamStats()
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}

	// BOS averages 40, LAL 36: best average first.
	if got[0].Team != "BOS" || got[1].Team != "LAL" {
		t.Fatalf("expected BOS then LAL, got %v then %v", got[0].Team, got[1].Team)
	}

	bos := got[0]
	if bos.AvgFantasyPoints != 40.0 || bos.TotalFantasyPoints != 80.0 {
		t.Fatalf("unexpected BOS fantasy aggregate: %+v", bos)
	}
	if bos.PlayerCount != 2 || bos.AvgAge != 27.0 || bos.AvgGames != 65.0 {
		t.Fatalf("unexpected BOS aggregate: %+v", bos)
	}
}

func TestPositionStatsConventionalOrder(t *testing.T) {
	svc := loadedService(aggregateRoster()...)

	got := svc.PositionStats()
	if len(got) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(got))
	}
	if got[0].Pos != domainplayers.PointGuard || got[1].Pos != domainplayers.Center {
		t.Fatalf("expected PG before C, got %v then %v", got[0].Pos, got[1].Pos)
	}

	pg := got[0]
	if pg.PlayerCount != 2 {
		t.Fatalf("expected 2 point guards, got %d", pg.PlayerCount)
	}
	if pg.AvgFantasyPoints != 33.0 || pg.AvgPoints != 19.0 || pg.AvgAssists != 7.5 {
		t.Fatalf("unexpected PG aggregate: %+v", pg)
	}
}

func TestLeagueAverages(t *testing.T) {
	svc := loadedService(aggregateRoster()...)

	got := svc.League()
	if math.Abs(got.Points-20.0) > 1e-9 {
		t.Fatalf("expected league avg points 20, got %v", got.Points)
	}
	if math.Abs(got.FantasyPoints-38.666666666666664) > 1e-9 {
		t.Fatalf("unexpected league avg fantasy: %v", got.FantasyPoints)
	}
}

func TestLeagueAveragesEmptyTable(t *testing.T) {
	svc := NewService(&stubStore{})

	if got := svc.League(); got != (LeagueAverages{}) {
		t.Fatalf("expected zero averages for empty table, got %+v", got)
	}
}

func TestLeaders(t *testing.T) {
	svc := loadedService(aggregateRoster()...)

	got, err := svc.Leaders("rebounds", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 leaders, got %d", len(got))
	}
	if got[0].Name != "Beta" || got[1].Name != "Gamma" {
		t.Fatalf("expected Beta then Gamma, got %v then %v", got[0].Name, got[1].Name)
	}
}

func TestLeadersDefaultLimit(t *testing.T) {
	svc := loadedService(aggregateRoster()...)

	got, err := svc.Leaders("fantasy", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected whole table under default limit, got %d", len(got))
	}
	if got[0].Name != "Beta" {
		t.Fatalf("expected Beta first by fantasy, got %v", got[0].Name)
	}
}

func TestLeadersUnknownMetric(t *testing.T) {
	svc := loadedService(aggregateRoster()...)

	if _, err := svc.Leaders("vibes", 5); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}
