package store

import (
	"sync"
	"time"

	"nba-fantasy-service/internal/domain/players"
)

// PlayerStore keeps a thread-safe snapshot of the enriched player table in
// memory. Writers swap the whole table atomically; readers always see either
// the previous complete table or the new one, never a partial build.
type PlayerStore struct {
	mu       sync.RWMutex
	table    []players.Player
	byName   map[string]int
	loadedAt time.Time
}

// NewPlayerStore constructs an empty PlayerStore.
func NewPlayerStore() *PlayerStore {
	return &PlayerStore{
		byName: make(map[string]int),
	}
}

// SetPlayers replaces the current table with a new snapshot.
func (s *PlayerStore) SetPlayers(rows []players.Player, at time.Time) {
	table := make([]players.Player, len(rows))
	copy(table, rows)
	byName := make(map[string]int, len(table))
	for i, p := range table {
		byName[p.Name] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.byName = byName
	s.loadedAt = at
}

// ListPlayers returns a copy of the current table.
func (s *PlayerStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, len(s.table))
	copy(result, s.table)
	return result
}

// GetPlayer retrieves a player row by name.
func (s *PlayerStore) GetPlayer(name string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byName[name]
	if !ok {
		return players.Player{}, false
	}
	return s.table[idx], true
}

// Count returns the number of rows in the current table.
func (s *PlayerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.table)
}

// Loaded reports whether a table has ever been successfully loaded. An
// unloaded store is the "data unavailable" sentinel for consumers.
func (s *PlayerStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loadedAt.IsZero()
}

// LoadedAt returns the time of the last successful swap.
func (s *PlayerStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
