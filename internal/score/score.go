// internal/score/score.go
//
// Length-based scoring tables for found words.
//
// A Table maps word length to points. Lengths past the end of the table grow
// linearly, Step points per extra letter. The table that was in force when a
// board was accepted must also grade the submissions for that board, so
// callers carry their Table by value rather than reaching for Default.

package score

import (
	"errors"
	"fmt"
)

// Table maps word length to points.
//
// Points is indexed by word length: Points[3] is the value of a three-letter
// word. Lengths past the last entry score Points[last] plus Step per extra
// letter beyond it.
type Table struct {
	Points []int
	Step   int
}

// Default is the production table. Three letters is the shortest length that
// scores; every letter past eight adds another 400.
var Default = Table{
	Points: []int{0, 0, 0, 100, 400, 800, 1400, 1800, 2200},
	Step:   400,
}

// Word returns the points awarded for a single word of length n.
func (t Table) Word(n int) int {
	if n < 0 || len(t.Points) == 0 {
		return 0
	}
	if n < len(t.Points) {
		return t.Points[n]
	}
	last := len(t.Points) - 1
	return t.Points[last] + t.Step*(n-last)
}

// Words sums the points of a collection of words. Duplicates count once.
// Words are expected to be normalized already; length is measured in bytes.
func (t Table) Words(ws []string) int {
	seen := make(map[string]struct{}, len(ws))
	total := 0
	for _, w := range ws {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		total += t.Word(len(w))
	}
	return total
}

// Validate reports whether the table is usable: non-empty, never paying less
// for a longer word, and with a non-negative tail step.
func (t Table) Validate() error {
	if len(t.Points) == 0 {
		return errors.New("score: empty table")
	}
	for i := 1; i < len(t.Points); i++ {
		if t.Points[i] < t.Points[i-1] {
			return fmt.Errorf("score: points decrease at length %d", i)
		}
	}
	if t.Step < 0 {
		return errors.New("score: negative step")
	}
	return nil
}
