// internal/bank/bank.go
//
// SQLite-backed board bank. Accepted boards are expensive to find (each one
// is a generate/solve loop), so batch tooling stores them here and match
// setup can pick one instead of searching from scratch.

package bank

import (
	"context"
	"database/sql"
	"errors"
)

// ErrEmpty is returned by Pick when no boards are stored.
var ErrEmpty = errors.New("bank: no boards stored")

// Entry is one accepted board.
type Entry struct {
	Seed      int64  // generator seed the board came from
	Board     string // flat row-major letters
	WordCount int    // size of the full solution set
	MaxScore  int    // score of the full solution set
}

// Store reads and writes the boards table.
type Store struct{ db *sql.DB }

// NewStore wraps an open database. The schema comes from the migrations.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records one accepted board. Inserting the same seed twice is a
// no-op.
func (s *Store) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO boards(seed, letters, word_count, max_score)
		 VALUES(?,?,?,?)`,
		e.Seed, e.Board, e.WordCount, e.MaxScore,
	)
	return err
}

// Pick returns one stored board chosen at random, or ErrEmpty.
func (s *Store) Pick(ctx context.Context) (Entry, error) {
	var e Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT seed, letters, word_count, max_score
		 FROM boards ORDER BY RANDOM() LIMIT 1`,
	).Scan(&e.Seed, &e.Board, &e.WordCount, &e.MaxScore)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrEmpty
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Count reports how many boards are stored.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM boards`).Scan(&n)
	return n, err
}
