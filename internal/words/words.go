// internal/words/words.go
//
// Prefix dictionary backing the grid solver.
//
// Responsibilities:
//   - Load word lists from files, streams, or in-memory slices.
//   - Normalize raw entries (lowercase, strip non-letters) and drop anything
//     shorter than MinWordLen.
//   - Answer word and prefix membership queries in O(len) time.
//
// Representation:
//   The dictionary is a trie stored in one flat slice. Each node carries a
//   [26]int32 child-handle table (NoNode marks an absent child) and a
//   terminal flag; the root lives at handle 0. Nothing is mutated after
//   construction, so concurrent readers need no locking.
//
// Constraints:
//   • Only ASCII letters survive normalization.
//   • Duplicate insertions are no-ops; Len reports distinct words.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MinWordLen is the shortest playable word length. Shorter entries are
// dropped at load time and shorter submissions never score.
const MinWordLen = 3

// NoNode marks an absent child handle in the trie.
const NoNode int32 = -1

// ErrNoWords is returned when a source yields no usable words.
var ErrNoWords = errors.New("words: no usable words")

// node is one trie cell: child handles for a–z plus a terminal flag.
type node struct {
	next     [26]int32
	terminal bool
}

var noChildren [26]int32

func init() {
	for i := range noChildren {
		noChildren[i] = NoNode
	}
}

// Dictionary is an immutable set of lowercase words with prefix lookup.
type Dictionary struct {
	nodes []node
	count int
}

// Load builds a Dictionary from a file with one word per line.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read builds a Dictionary from a stream with one word per line.
// Entries are normalized; lines that normalize below MinWordLen are skipped.
func Read(r io.Reader) (*Dictionary, error) {
	d := empty()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	if d.count == 0 {
		return nil, ErrNoWords
	}
	return d, nil
}

// FromList builds a Dictionary from an in-memory word list.
func FromList(list []string) (*Dictionary, error) {
	d := empty()
	for _, w := range list {
		d.add(w)
	}
	if d.count == 0 {
		return nil, ErrNoWords
	}
	return d, nil
}

// Normalize lowercases w and strips every byte that is not an ASCII letter.
// Submissions and dictionary entries go through the same normalization so
// that lookups compare like with like.
func Normalize(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for i := 0; i < len(w); i++ {
		c := w[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// Contains reports whether s is a word in the dictionary. Lookups are
// byte-wise over lowercase ASCII; any other byte means no match, so callers
// with raw input should Normalize first.
func (d *Dictionary) Contains(s string) bool {
	n := d.walk(s)
	return n != NoNode && d.nodes[n].terminal
}

// HasPrefix reports whether at least one word in the dictionary starts
// with s. Same byte-wise contract as Contains.
func (d *Dictionary) HasPrefix(s string) bool {
	return d.walk(s) != NoNode
}

// Len reports the number of distinct words in the dictionary.
func (d *Dictionary) Len() int { return d.count }

// Root returns the handle of the empty prefix.
func (d *Dictionary) Root() int32 { return 0 }

// Next returns the handle reached by extending node n with letter c, or
// NoNode when no word continues that way. c must be a lowercase ASCII
// letter; n must be a handle obtained from Root or Next.
func (d *Dictionary) Next(n int32, c byte) int32 {
	return d.nodes[n].next[c-'a']
}

// Terminal reports whether node n completes a word.
func (d *Dictionary) Terminal(n int32) bool { return d.nodes[n].terminal }

func empty() *Dictionary {
	d := &Dictionary{nodes: make([]node, 0, 1024)}
	d.grow() // root
	return d
}

// add normalizes one raw entry and inserts it if it is long enough.
func (d *Dictionary) add(raw string) {
	w := Normalize(raw)
	if len(w) < MinWordLen {
		return
	}
	d.insert(w)
}

// insert threads w through the trie, growing nodes as needed.
func (d *Dictionary) insert(w string) {
	n := int32(0)
	for i := 0; i < len(w); i++ {
		c := w[i] - 'a'
		child := d.nodes[n].next[c]
		if child == NoNode {
			child = d.grow()
			d.nodes[n].next[c] = child
		}
		n = child
	}
	if !d.nodes[n].terminal {
		d.nodes[n].terminal = true
		d.count++
	}
}

// grow appends a fresh node and returns its handle.
func (d *Dictionary) grow() int32 {
	d.nodes = append(d.nodes, node{next: noChildren})
	return int32(len(d.nodes) - 1)
}

// walk follows s from the root, returning the final handle or NoNode.
func (d *Dictionary) walk(s string) int32 {
	n := int32(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return NoNode
		}
		n = d.nodes[n].next[c-'a']
		if n == NoNode {
			return NoNode
		}
	}
	return n
}
