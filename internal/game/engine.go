// internal/game/engine.go
//
// Match lifecycle for a two-player game.
// Responsibilities:
//   - Create games by generating boards until one is rich enough to play
//     (its full solution set must out-score Config.MinScore).
//   - Seat a second player (Join) with host-collision and capacity checks.
//   - Grade submissions (Submit) with the same table that accepted the
//     board, after normalizing and deduplicating the words.
//   - Report progress: Open, Finished, Winner.
//
// Notes:
//   - Submitted words are taken at face value and graded by length; they are
//     not checked against the board's solution set.
//   - Config.NextSeed and Config.Generate exist so tests can pin the boards
//     a game is built from.
package game

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/score"
	"github.com/robalobadob/wordhunt/internal/solver"
	"github.com/robalobadob/wordhunt/internal/words"
)

const (
	// DefaultMinScore is the acceptance threshold: a board is playable when
	// its full solution set scores strictly more than this.
	DefaultMinScore = 300_000

	// DefaultMaxAttempts bounds the generate/solve/accept loop.
	DefaultMaxAttempts = 1000
)

// Config controls board acceptance for new games.
type Config struct {
	MinScore    int                     // accept boards scoring strictly above this; 0 means any scoring board
	MaxAttempts int                     // seeds tried before ErrNoBoard
	Table       score.Table             // grades boards and submissions
	NextSeed    func() int64            // seed source; defaults to crypto/rand
	Generate    func(int64) board.Board // board source; defaults to board.Generate
}

// DefaultConfig returns the production acceptance settings.
func DefaultConfig() Config {
	return Config{
		MinScore:    DefaultMinScore,
		MaxAttempts: DefaultMaxAttempts,
		Table:       score.Default,
	}
}

// New creates a game hosted by host. It draws seeds and generates boards
// until one's full solution set scores above cfg.MinScore, then fixes that
// board, its solution set, and the scoring table into the returned Game.
// Exhausting cfg.MaxAttempts returns ErrNoBoard.
func New(host string, dict *words.Dictionary, cfg Config) (*Game, error) {
	if host == "" {
		return nil, errors.New("game: empty host username")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if len(cfg.Table.Points) == 0 {
		cfg.Table = score.Default
	}
	if cfg.NextSeed == nil {
		cfg.NextSeed = randomSeed
	}
	if cfg.Generate == nil {
		cfg.Generate = board.Generate
	}

	s := solver.New(dict, solver.Config{Table: cfg.Table})
	for i := 0; i < cfg.MaxAttempts; i++ {
		seed := cfg.NextSeed()
		b := cfg.Generate(seed)
		res, err := s.Solve(b)
		if err != nil {
			return nil, err
		}
		if res.Score <= cfg.MinScore {
			continue
		}
		return &Game {
			ID:        uuid.NewString(),
			Seed:      seed,
			Board:     b,
			Words:     res.Words,
			MaxScore:  res.Score,
			Host:      Player{Username: host},
			CreatedAt: time.Now().UTC(),
			table:     cfg.Table,
		}, nil
	}
	return nil, ErrNoBoard
}

// Join seats username as the guest.
func (g *Game) Join(username string) error {
	if username == "" {
		return errors.New("game: empty username")
	}
	if g.Guest.Username != "" {
		return ErrGameFull
	}
	if username == g.Host.Username {
		return ErrSameUsername
	}
	g.Guest = Player{Username: username}
	return nil
}

// Submit records username's found words and returns the graded score.
// Words are normalized, too-short entries dropped, and duplicates collapsed
// to their first occurrence before grading. Submitting again overwrites the
// previous result.
func (g *Game) Submit(username string, found []string) (int, error) {
	p := g.player(username)
	if p == nil {
		return 0, ErrUnknownPlayer
	}
	ws := cleanWords(found)
	p.Found = ws
	p.Score = g.table.Words(ws)
	p.Done = true
	return p.Score, nil
}

// Open reports whether the game still has a free seat.
func (g *Game) Open() bool { return g.Guest.Username == "" }

// Finished reports whether both seats are taken and both have submitted.
func (g *Game) Finished() bool {
	return g.Host.Done && g.Guest.Username != "" && g.Guest.Done
}

// Winner returns the username with the higher score, or "" while the game
// is unfinished or tied.
func (g *Game) Winner() string {
	if !g.Finished() {
		return ""
	}
	switch {
	case g.Host.Score > g.Guest.Score:
		return g.Host.Username
	case g.Guest.Score > g.Host.Score:
		return g.Guest.Username
	}
	return ""
}

// player resolves a username to its seat, or nil. The empty string never
// matches, even while the guest seat is empty.
func (g *Game) player(username string) *Player {
	switch username {
	case "":
		return nil
	case g.Host.Username:
		return &g.Host
	case g.Guest.Username:
		return &g.Guest
	}
	return nil
}

// cleanWords normalizes raw submissions, drops entries shorter than the
// playable minimum, and deduplicates preserving first occurrence.
func cleanWords(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, w := range raw {
		n := words.Normalize(w)
		if len(n) < words.MinWordLen {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// randomSeed draws a non-negative seed from crypto/rand.
func randomSeed() int64 {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(1<<62))
	return nBig.Int64()
}
