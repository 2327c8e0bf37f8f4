package players

import (
	"sort"
	"time"

	domainplayers "nba-fantasy-service/internal/domain/players"
)

// Store defines the read contract over the cached enriched table.
type Store interface {
	ListPlayers() []domainplayers.Player
	GetPlayer(name string) (domainplayers.Player, bool)
	Loaded() bool
	LoadedAt() time.Time
}

// Service answers read-only filtering, ranking, and aggregation queries over
// the enriched table. It never mutates the cached table; every result is a
// copy or a fresh slice.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Loaded reports whether any table has been published yet.
func (s *Service) Loaded() bool {
	return s.store.Loaded()
}

// LoadedAt returns the time of the last successful load.
func (s *Service) LoadedAt() time.Time {
	return s.store.LoadedAt()
}

// Players returns the full enriched table.
func (s *Service) Players() []domainplayers.Player {
	return s.store.ListPlayers()
}

// PlayerByName returns a single row if present.
func (s *Service) PlayerByName(name string) (domainplayers.Player, bool) {
	return s.store.GetPlayer(name)
}

// Similar returns up to limit other players sharing the named player's
// archetype, best fantasy scorers first. The second return is false when the
// named player is not in the table.
func (s *Service) Similar(name string, limit int) ([]domainplayers.Player, bool) {
	target, ok := s.store.GetPlayer(name)
	if !ok {
		return nil, false
	}
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	matches := make([]domainplayers.Player, 0)
	for _, p := range s.store.ListPlayers() {
		if p.Name == name || p.Archetype != target.Archetype {
			continue
		}
		matches = append(matches, p)
	}
	sortByFantasyDesc(matches)

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, true
}

const defaultSimilarLimit = 5

func sortByFantasyDesc(rows []domainplayers.Player) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FantasyPoints != rows[j].FantasyPoints {
			return rows[i].FantasyPoints > rows[j].FantasyPoints
		}
		return rows[i].Name < rows[j].Name
	})
}
