// internal/game/manager.go
//
// Manager wires a dictionary, a Store, and acceptance settings into the
// operations a front end calls: create, list, join, fetch, submit. It owns
// no state of its own, so one Manager serves all matches.

package game

import (
	"context"

	"github.com/robalobadob/wordhunt/internal/words"
)

// Joinable summarizes an open game for listings.
type Joinable struct {
	ID   string
	Host string
}

// Manager runs matches over a Store.
type Manager struct {
	store Store
	dict  *words.Dictionary
	cfg   Config
}

// NewManager returns a Manager creating games with cfg.
func NewManager(store Store, dict *words.Dictionary, cfg Config) *Manager {
	return &Manager{store: store, dict: dict, cfg: cfg}
}

// CreateGame makes a game hosted by host and saves it.
func (m *Manager) CreateGame(ctx context.Context, host string) (*Game, error) {
	g, err := New(host, m.dict, m.cfg)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// OpenGames lists games waiting for an opponent, oldest first.
func (m *Manager) OpenGames(ctx context.Context) ([]Joinable, error) {
	gs, err := m.store.Open(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Joinable, 0, len(gs))
	for _, g := range gs {
		out = append(out, Joinable{ID: g.ID, Host: g.Host.Username})
	}
	return out, nil
}

// JoinGame seats username in game id and returns the updated game.
func (m *Manager) JoinGame(ctx context.Context, id, username string) (*Game, error) {
	g, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := g.Join(username); err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Game fetches a game by ID.
func (m *Manager) Game(ctx context.Context, id string) (*Game, error) {
	return m.store.Get(ctx, id)
}

// SubmitResults grades username's words for game id, records them, and
// returns the score.
func (m *Manager) SubmitResults(ctx context.Context, id, username string, found []string) (int, error) {
	g, err := m.store.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	n, err := g.Submit(username, found)
	if err != nil {
		return 0, err
	}
	if err := m.store.Save(ctx, g); err != nil {
		return 0, err
	}
	return n, nil
}
