package players

import (
	"errors"
	"math"
	"testing"

	domainplayers "nba-fantasy-service/internal/domain/players"
	"nba-fantasy-service/internal/stats"
)

func rankRoster() []domainplayers.Player {
	a := enriched("Alpha", "BOS", domainplayers.PointGuard, 30.0)
	a.Games = 60
	a.Efficiency = 25.0
	a.UsageRate = 20.0
	a.FGPct = 0.45
	a.ThreePPct = 0.36
	a.FTPct = 0.85

	b := enriched("Beta", "LAL", domainplayers.Center, 45.0)
	b.Games = 70
	b.Efficiency = 35.0
	b.UsageRate = 25.0
	b.FGPct = 0.55
	b.ThreePPct = 0.20
	b.FTPct = 0.65

	c := enriched("Gamma", "MIL", domainplayers.PointGuard, 38.0)
	c.Games = 15
	c.Efficiency = 30.0
	c.UsageRate = 28.0

	return []domainplayers.Player{a, b, c}
}

func TestRankByFantasy(t *testing.T) {
	svc := loadedService(rankRoster()...)

	got, err := svc.Rank(RankParams{Strategy: RankByFantasy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 ranked rows, got %d", len(got))
	}
	wantOrder := []string{"Beta", "Gamma", "Alpha"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("expected order %v, got %+v", wantOrder, got)
		}
		if got[i].Rank != i+1 {
			t.Fatalf("expected rank %d for %q, got %d", i+1, name, got[i].Rank)
		}
		if got[i].Score != got[i].FantasyPoints {
			t.Fatalf("expected score to equal fantasy points for %q", name)
		}
	}
}

func TestRankMinGamesThreshold(t *testing.T) {
	svc := loadedService(rankRoster()...)

	got, err := svc.Rank(RankParams{MinGames: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected Gamma excluded, got %d rows", len(got))
	}
	for _, r := range got {
		if r.Name == "Gamma" {
			t.Fatal("expected Gamma below games threshold to be excluded")
		}
	}
}

func TestRankWeightedStrategy(t *testing.T) {
	svc := loadedService(rankRoster()...)

	got, err := svc.Rank(RankParams{Strategy: RankByWeightedScore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range got {
		shootingAvg := (r.FGPct + r.ThreePPct + r.FTPct) / 3
		want := r.FantasyPoints*0.4 + r.Efficiency*0.3 + r.UsageRate*0.2 + shootingAvg*0.1
		if math.Abs(r.Score-want) > 1e-9 {
			t.Fatalf("expected weighted score %v for %q, got %v", want, r.Name, r.Score)
		}
	}
}

func TestRankDefaultsToFantasy(t *testing.T) {
	svc := loadedService(rankRoster()...)

	got, err := svc.Rank(RankParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Score != got[0].FantasyPoints {
		t.Fatal("expected empty strategy to default to fantasy")
	}
}

func TestRankRejectsBadParams(t *testing.T) {
	svc := loadedService(rankRoster()...)

	if _, err := svc.Rank(RankParams{MinGames: -1}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter for negative games, got %v", err)
	}
	if _, err := svc.Rank(RankParams{Strategy: "elo"}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter for unknown strategy, got %v", err)
	}
}

func TestRankTiesBreakOnName(t *testing.T) {
	a := enriched("Zed", "BOS", domainplayers.PointGuard, 30.0)
	b := enriched("Abe", "LAL", domainplayers.PointGuard, 30.0)
	svc := loadedService(a, b)

	got, err := svc.Rank(RankParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Name != "Abe" || got[1].Name != "Zed" {
		t.Fatalf("expected name tie-break, got %v then %v", got[0].Name, got[1].Name)
	}
}

func TestRankCustomWeights(t *testing.T) {
	svc := loadedService(rankRoster()...)

	w := stats.ScoringWeights{Points: 1.0}
	got, err := svc.Rank(RankParams{Weights: &w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range got {
		if r.FantasyPoints != r.Points {
			t.Fatalf("expected points-only fantasy for %q, got %v", r.Name, r.FantasyPoints)
		}
	}
}

func TestPositionRanking(t *testing.T) {
	svc := loadedService(rankRoster()...)

	got := svc.PositionRanking(domainplayers.PointGuard)
	if len(got) != 2 {
		t.Fatalf("expected 2 point guards, got %d", len(got))
	}
	if got[0].Name != "Gamma" || got[1].Name != "Alpha" {
		t.Fatalf("expected Gamma then Alpha, got %v then %v", got[0].Name, got[1].Name)
	}
	if got[0].Rank != 1 || got[1].Rank != 2 {
		t.Fatalf("expected ranks 1,2, got %d,%d", got[0].Rank, got[1].Rank)
	}
}
