package store

import (
	"testing"
	"time"

	"nba-fantasy-service/internal/domain/players"
)

func sample(name string) players.Player {
	return players.Player{Name: name, Team: "BOS", Pos: players.PointGuard, Points: 20.0}
}

func TestPlayerStoreStartsUnloaded(t *testing.T) {
	s := NewPlayerStore()

	if s.Loaded() {
		t.Fatal("expected new store to be unloaded")
	}
	if s.Count() != 0 {
		t.Fatalf("expected empty store, got %d rows", s.Count())
	}
	if got := s.ListPlayers(); len(got) != 0 {
		t.Fatalf("expected no players, got %d", len(got))
	}
	if _, ok := s.GetPlayer("Anyone"); ok {
		t.Fatal("expected lookup miss on empty store")
	}
}

func TestPlayerStoreSetAndGet(t *testing.T) {
	s := NewPlayerStore()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	s.SetPlayers([]players.Player{sample("Alpha"), sample("Beta")}, at)

	if !s.Loaded() {
		t.Fatal("expected store to be loaded")
	}
	if !s.LoadedAt().Equal(at) {
		t.Fatalf("expected loadedAt %v, got %v", at, s.LoadedAt())
	}
	if s.Count() != 2 {
		t.Fatalf("expected 2 rows, got %d", s.Count())
	}

	got, ok := s.GetPlayer("Beta")
	if !ok {
		t.Fatal("expected to find Beta")
	}
	if got.Name != "Beta" {
		t.Fatalf("expected Beta, got %+v", got)
	}
	if _, ok := s.GetPlayer("Gamma"); ok {
		t.Fatal("expected lookup miss for unknown player")
	}
}

func TestPlayerStoreSwapReplacesTable(t *testing.T) {
	s := NewPlayerStore()
	s.SetPlayers([]players.Player{sample("Alpha")}, time.Now())
	s.SetPlayers([]players.Player{sample("Beta"), sample("Gamma")}, time.Now())

	if s.Count() != 2 {
		t.Fatalf("expected replacement table with 2 rows, got %d", s.Count())
	}
	if _, ok := s.GetPlayer("Alpha"); ok {
		t.Fatal("expected old row to be gone after swap")
	}
}

func TestPlayerStoreListReturnsCopy(t *testing.T) {
	s := NewPlayerStore()
	s.SetPlayers([]players.Player{sample("Alpha")}, time.Now())

	list := s.ListPlayers()
	list[0].Name = "Mutated"

	got, ok := s.GetPlayer("Alpha")
	if !ok || got.Name != "Alpha" {
		t.Fatalf("expected stored row untouched, got %+v", got)
	}
}

func TestPlayerStoreSetCopiesInput(t *testing.T) {
	s := NewPlayerStore()
	rows := []players.Player{sample("Alpha")}
	s.SetPlayers(rows, time.Now())

	rows[0].Name = "Mutated"

	if _, ok := s.GetPlayer("Alpha"); !ok {
		t.Fatal("expected store to hold its own copy of the rows")
	}
}
