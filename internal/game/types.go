// internal/game/types.go
//
// Core type definitions for match bookkeeping.
// Defines:
//   - Player: one seat at a game (username plus submitted result).
//   - Game: an accepted board, its full solution set, and both seats.
//   - Store: the persistence boundary games are saved through.

package game

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/score"
)

var (
	// ErrNotFound is returned by Store implementations for unknown game IDs.
	ErrNotFound = errors.New("game: not found")

	// ErrGameFull is returned by Join once both seats are taken.
	ErrGameFull = errors.New("game: already has two players")

	// ErrSameUsername is returned by Join when the guest picks the host's name.
	ErrSameUsername = errors.New("game: username already taken by host")

	// ErrUnknownPlayer is returned by Submit for usernames not seated here.
	ErrUnknownPlayer = errors.New("game: unknown player")

	// ErrNoBoard is returned by New when no generated board clears the
	// acceptance threshold within the attempt budget.
	ErrNoBoard = errors.New("game: no acceptable board found")
)

// Player is one seat at a game.
type Player struct {
	Username string   // display name, unique within the game
	Score    int      // graded total of Found
	Done     bool     // set once the player has submitted
	Found    []string // submitted words, normalized and deduplicated
}

// Game holds one match: the accepted board, everything the dictionary
// admits on it, and the two seats.
type Game struct {
	ID        string // UUID
	Seed      int64  // seed the accepted board was generated from
	Board     board.Board
	Words     []string // full solution set, longest first
	MaxScore  int      // score of the full solution set
	Host      Player
	Guest     Player // zero until someone joins
	CreatedAt time.Time

	table score.Table // grades submissions; fixed when the board was accepted
}

// Store is the persistence boundary for games. Implementations may be
// backed by memory, Redis, SQL, etc.
type Store interface {
	// Save persists or updates a game.
	Save(ctx context.Context, g *Game) error

	// Get retrieves a game by ID. Returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (*Game, error)

	// Open lists games that still have a free seat, oldest first.
	Open(ctx context.Context) ([]*Game, error)
}
