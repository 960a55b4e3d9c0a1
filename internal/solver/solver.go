// internal/solver/solver.go
//
// Exhaustive board search: every dictionary word a legal walk can trace.
//
// Responsibilities:
//   - Depth-first backtracking from every start cell over 8-way adjacency,
//     never reusing a cell within one path.
//   - Prefix pruning: the dictionary's trie handle rides along the walk, so
//     a branch dies the moment its letters stop being a live prefix.
//   - Budget enforcement: every cell expansion counts against MaxVisits and
//     an overrun surfaces as ErrBudgetExceeded instead of open-ended work.
//
// Found words form a set (a word reachable by many paths counts once) and
// come back sorted longest first, ties lexicographic, with their score.

package solver

import (
	"errors"
	"sort"
	"sync/atomic"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/score"
	"github.com/robalobadob/wordhunt/internal/words"
)

// DefaultMaxVisits bounds a single solve. A full-dictionary search of a
// standard board stays orders of magnitude under this; only degenerate
// inputs or very large grids run into it.
const DefaultMaxVisits = 1 << 24

// ErrBudgetExceeded is returned when a solve burns through its visit budget.
// Distinct from an empty Result, which is a normal outcome.
var ErrBudgetExceeded = errors.New("solver: visit budget exceeded")

var errNilDictionary = errors.New("solver: nil dictionary")

// Config tunes a Solver.
type Config struct {
	MinWordLen int         // shortest word to record
	MaxPathLen int         // longest path to walk; 0 means every cell
	MaxVisits  int64       // cell-expansion budget per solve; 0 means DefaultMaxVisits
	Table      score.Table // grades the found words
}

// DefaultConfig returns the standard search limits and scoring table.
func DefaultConfig() Config {
	return Config{
		MinWordLen: words.MinWordLen,
		MaxVisits:  DefaultMaxVisits,
		Table:      score.Default,
	}
}

// Result is everything the dictionary admits on one board.
//
// Words is sorted longest first, ties lexicographic. Score is the Table sum
// over Words. No words is a valid Result, not an error.
type Result struct {
	Words []string
	Score int
}

// Solver runs searches over one dictionary with fixed limits. It holds no
// per-solve state, so one Solver may serve concurrent callers.
type Solver struct {
	dict *words.Dictionary
	cfg  Config
}

// New returns a Solver over dict. Zero fields of cfg fall back to defaults:
// MinWordLen to words.MinWordLen, MaxVisits to DefaultMaxVisits, Table to
// score.Default.
func New(dict *words.Dictionary, cfg Config) *Solver {
	if cfg.MinWordLen <= 0 {
		cfg.MinWordLen = words.MinWordLen
	}
	if cfg.MaxVisits <= 0 {
		cfg.MaxVisits = DefaultMaxVisits
	}
	if len(cfg.Table.Points) == 0 {
		cfg.Table = score.Default
	}
	return &Solver{dict: dict, cfg: cfg}
}

// Solve finds every word of dict that a legal walk of b can trace, using
// the default limits.
func Solve(b board.Board, dict *words.Dictionary) (Result, error) {
	return New(dict, DefaultConfig()).Solve(b)
}

// Solve searches b from every start cell in turn. Identical inputs always
// produce identical Results.
func (s *Solver) Solve(b board.Board) (Result, error) {
	if s.dict == nil {
		return Result{}, errNilDictionary
	}
	if err := b.Validate(); err != nil {
		return Result{}, err
	}

	var visits int64
	run := s.newSearch(b, &visits)
	for start := 0; start < b.Len(); start++ {
		if err := run.walk(start, s.dict.Root()); err != nil {
			return Result{}, err
		}
	}
	return s.result(run.found), nil
}

// result sorts a found set and grades it.
func (s *Solver) result(found map[string]struct{}) Result {
	ws := make([]string, 0, len(found))
	for w := range found {
		ws = append(ws, w)
	}
	sort.Slice(ws, func(i, j int) bool {
		if len(ws[i]) != len(ws[j]) {
			return len(ws[i]) > len(ws[j])
		}
		return ws[i] < ws[j]
	})
	return Result{Words: ws, Score: s.cfg.Table.Words(ws)}
}

// maxPathLen resolves the configured cap against the board in hand.
func (s *Solver) maxPathLen(b board.Board) int {
	if s.cfg.MaxPathLen > 0 && s.cfg.MaxPathLen < b.Len() {
		return s.cfg.MaxPathLen
	}
	return b.Len()
}

// search carries the mutable state of one walk. visits may be shared by
// several searches running in parallel; everything else is private.
type search struct {
	b       board.Board
	dict    *words.Dictionary
	adj     [][]int
	minLen  int
	maxLen  int
	budget  int64
	visits  *int64
	visited []bool
	path    []byte
	found   map[string]struct{}
}

func (s *Solver) newSearch(b board.Board, visits *int64) *search {
	maxLen := s.maxPathLen(b)
	return &search{
		b:       b,
		dict:    s.dict,
		adj:     board.Neighbors(b.Size()),
		minLen:  s.cfg.MinWordLen,
		maxLen:  maxLen,
		budget:  s.cfg.MaxVisits,
		visits:  visits,
		visited: make([]bool, b.Len()),
		path:    make([]byte, 0, maxLen),
		found:   make(map[string]struct{}),
	}
}

// walk extends the current path into cell, with node the trie handle of the
// path so far. Dead prefixes cut the branch; terminal nodes of playable
// length record a word.
func (s *search) walk(cell int, node int32) error {
	if atomic.AddInt64(s.visits, 1) > s.budget {
		return ErrBudgetExceeded
	}
	next := s.dict.Next(node, s.b.Letter(cell))
	if next == words.NoNode {
		return nil
	}

	s.path = append(s.path, s.b.Letter(cell))
	s.visited[cell] = true

	if len(s.path) >= s.minLen && s.dict.Terminal(next) {
		s.found[string(s.path)] = struct{}{}
	}
	if len(s.path) < s.maxLen {
		for _, n := range s.adj[cell] {
			if s.visited[n] {
				continue
			}
			if err := s.walk(n, next); err != nil {
				return err
			}
		}
	}

	s.visited[cell] = false
	s.path = s.path[:len(s.path)-1]
	return nil
}
