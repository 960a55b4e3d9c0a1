// internal/store/memory.go
//
// In-memory implementation of the game.Store interface.
// This is the persistence layer for match sessions; games live only as long
// as the process.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Open listings come back oldest first, ID as the tiebreak.
//   - game.ErrNotFound for missing IDs on Get().

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/robalobadob/wordhunt/internal/game"
)

// Memory is an in-memory map-based game.Store implementation.
type Memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{games: make(map[string]*game.Game)}
}

// Save adds or updates the game in the map.
func (m *Memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

// Get looks up a game by ID.
func (m *Memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, game.ErrNotFound
}

// Open lists games with a free seat, oldest first.
func (m *Memory) Open(ctx context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Game, 0)
	for _, g := range m.games {
		if g.Open() {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
