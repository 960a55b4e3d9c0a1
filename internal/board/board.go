// internal/board/board.go
//
// Board value type: a square letter grid addressed in row-major order.
//
// Responsibilities:
//   - Strict construction (New) and lenient parsing of free-form text (Parse).
//   - Cell access by index or row/column, plus printable forms.
//   - Precomputed 8-directional adjacency for a given grid size.
//
// A Board is immutable once constructed. The zero Board is invalid and
// Validate reports it.

package board

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSize is the side length of a standard board.
const DefaultSize = 4

// ErrInvalid marks malformed board input. Errors carry detail and wrap this
// sentinel, so callers branch with errors.Is.
var ErrInvalid = errors.New("board: invalid")

// Board is a size×size grid of lowercase ASCII letters, row-major.
type Board struct {
	size    int
	letters []byte
}

// New builds a Board of the given side length from exactly size² letters.
// Input may be upper or lower case; anything that is not an ASCII letter
// fails with ErrInvalid.
func New(size int, letters string) (Board, error) {
	if size < 2 {
		return Board{}, fmt.Errorf("board: size %d, want at least 2: %w", size, ErrInvalid)
	}
	if len(letters) != size*size {
		return Board{}, fmt.Errorf("board: %d letters for size %d, want %d: %w",
			len(letters), size, size*size, ErrInvalid)
	}
	cells := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c >= 'a' && c <= 'z':
			cells[i] = c
		case c >= 'A' && c <= 'Z':
			cells[i] = c + ('a' - 'A')
		default:
			return Board{}, fmt.Errorf("board: cell %d is %q, want a letter: %w", i, c, ErrInvalid)
		}
	}
	return Board{size: size, letters: cells}, nil
}

// Parse reads a board from free-form text: letters with any amount of
// whitespace or punctuation between them. The side length is inferred, so
// the letter count must be a perfect square of at least 2.
func Parse(s string) (Board, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			b.WriteByte(c)
		}
	}
	letters := b.String()
	size := side(len(letters))
	if size < 2 {
		return Board{}, fmt.Errorf("board: %d letters does not form a square grid: %w",
			len(letters), ErrInvalid)
	}
	return New(size, letters)
}

// side returns n's integer square root, or -1 if n is not a perfect square.
func side(n int) int {
	s := 0
	for s*s < n {
		s++
	}
	if s*s != n {
		return -1
	}
	return s
}

// Validate reports whether b is well formed. The zero Board is not.
func (b Board) Validate() error {
	if b.size < 2 {
		return fmt.Errorf("board: size %d: %w", b.size, ErrInvalid)
	}
	if len(b.letters) != b.size*b.size {
		return fmt.Errorf("board: %d letters for size %d: %w", len(b.letters), b.size, ErrInvalid)
	}
	for i, c := range b.letters {
		if c < 'a' || c > 'z' {
			return fmt.Errorf("board: cell %d is %q: %w", i, c, ErrInvalid)
		}
	}
	return nil
}

// Size returns the side length.
func (b Board) Size() int { return b.size }

// Len returns the number of cells (size squared).
func (b Board) Len() int { return len(b.letters) }

// At returns the letter at row r, column c.
func (b Board) At(r, c int) byte { return b.letters[r*b.size+c] }

// Letter returns the letter at flat index i.
func (b Board) Letter(i int) byte { return b.letters[i] }

// String returns the letters as one flat row-major string.
func (b Board) String() string { return string(b.letters) }

// Rows returns the grid as size strings of size letters each.
func (b Board) Rows() []string {
	rows := make([]string, b.size)
	for r := 0; r < b.size; r++ {
		rows[r] = string(b.letters[r*b.size : (r+1)*b.size])
	}
	return rows
}

// Neighbors returns, for every cell of a size×size grid, the flat indices of
// its adjacent cells in all eight directions. Edge and corner cells simply
// have shorter lists.
func Neighbors(size int) [][]int {
	out := make([][]int, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			adj := make([]int, 0, 8)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr < 0 || nr >= size || nc < 0 || nc >= size {
						continue
					}
					adj = append(adj, nr*size+nc)
				}
			}
			out[r*size+c] = adj
		}
	}
	return out
}
