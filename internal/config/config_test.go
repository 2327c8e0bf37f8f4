package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "REFRESH_INTERVAL", "PROVIDER", "ADMIN_TOKEN",
		"STATS_FILE", "RANK_MIN_GAMES", "RANK_STRATEGY", "DEDUPE_TIEBREAK",
		"METRICS_ENABLED", "METRICS_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %q", cfg.Port)
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Fatalf("expected default refresh interval 5m, got %v", cfg.RefreshInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected default provider fixture, got %q", cfg.Provider)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected empty admin token, got %q", cfg.AdminToken)
	}
	if cfg.Source.StatsPath != "2024NBAplayerStats.xlsx" {
		t.Fatalf("unexpected default stats path %q", cfg.Source.StatsPath)
	}
	if cfg.Ranking.MinGames != 20 || cfg.Ranking.Strategy != "fantasy" || cfg.Ranking.TieBreak != "points" {
		t.Fatalf("unexpected ranking defaults: %+v", cfg.Ranking)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("PROVIDER", "xlsx")
	t.Setenv("ADMIN_TOKEN", "secret")
	t.Setenv("STATS_FILE", "/data/season.xlsx")
	t.Setenv("STATS_SHEET", "Per Game")
	t.Setenv("RANK_MIN_GAMES", "40")
	t.Setenv("RANK_STRATEGY", "weighted")
	t.Setenv("DEDUPE_TIEBREAK", "fantasy")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Fatalf("expected 30s refresh, got %v", cfg.RefreshInterval)
	}
	if cfg.Provider != "xlsx" || cfg.AdminToken != "secret" {
		t.Fatalf("unexpected provider/token: %q %q", cfg.Provider, cfg.AdminToken)
	}
	if cfg.Source.StatsPath != "/data/season.xlsx" || cfg.Source.StatsSheet != "Per Game" {
		t.Fatalf("unexpected source config: %+v", cfg.Source)
	}
	if cfg.Ranking.MinGames != 40 || cfg.Ranking.Strategy != "weighted" || cfg.Ranking.TieBreak != "fantasy" {
		t.Fatalf("unexpected ranking config: %+v", cfg.Ranking)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"valid", "90s", 90 * time.Second},
		{"invalid", "not-a-duration", time.Minute},
		{"negative", "-5s", time.Minute},
		{"zero", "0s", time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tc.value)
			if got := durationEnvOrDefault("TEST_DURATION", time.Minute); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"invalid", "abc", 7},
		{"negative", "-3", 7},
		{"zero", "0", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tc.value)
			if got := intEnvOrDefault("TEST_INT", 7); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"one", "1", true},
		{"true", "true", true},
		{"yes", "YES", true},
		{"zero", "0", false},
		{"false", "False", false},
		{"no", "no", false},
		{"garbage", "maybe", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tc.value)
			if got := boolEnvOrDefault("TEST_BOOL", true); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
