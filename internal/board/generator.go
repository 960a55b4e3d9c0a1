// internal/board/generator.go
//
// Seeded board generation.
//
// Boards are a pure function of the seed. The seed keys a ChaCha20 stream
// (big-endian in the first 8 key bytes, rest zero, zero nonce) and each cell
// is drawn from a letter-frequency table by unbiased rejection sampling over
// little-endian keystream words. Any implementation of the same stream and
// table reproduces the same boards byte for byte.
//
// The generator never judges board quality; callers that need a minimum
// solvable score run their own accept loop.

package board

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/crypto/chacha20"
)

// EnglishWeights is the default letter distribution: relative English letter
// frequencies in hundredths of a percent, a through z.
var EnglishWeights = [26]int{
	817, 149, 278, 425, 1270, 223, 202, 609, 697, 15, 77, 403, 241,
	675, 751, 193, 10, 599, 633, 906, 276, 98, 236, 15, 197, 7,
}

// Generator produces boards of a fixed size from a fixed letter distribution.
type Generator struct {
	size  int
	cum   [26]uint32 // cumulative weights, cum[25] == total
	total uint32
}

var defaultGen *Generator

func init() {
	g, err := NewGenerator(DefaultSize, EnglishWeights)
	if err != nil {
		panic("board: default generator: " + err.Error())
	}
	defaultGen = g
}

// Generate produces the standard board for seed: DefaultSize cells drawn
// from EnglishWeights.
func Generate(seed int64) Board {
	return defaultGen.Generate(seed)
}

// NewGenerator builds a Generator for the given side length and letter
// weights. Weights must be non-negative and sum to a positive value that
// fits in 32 bits.
func NewGenerator(size int, weights [26]int) (*Generator, error) {
	if size < 2 {
		return nil, fmt.Errorf("board: generator size %d, want at least 2: %w", size, ErrInvalid)
	}
	g := &Generator{size: size}
	var total uint64
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("board: weight %d for %q: %w", w, byte('a'+i), ErrInvalid)
		}
		total += uint64(w)
		if total > math.MaxUint32 {
			return nil, fmt.Errorf("board: weights overflow: %w", ErrInvalid)
		}
		g.cum[i] = uint32(total)
	}
	if total == 0 {
		return nil, errors.New("board: all weights zero")
	}
	g.total = uint32(total)
	return g, nil
}

// Generate produces the board for seed. Identical seeds always yield
// identical boards.
func (g *Generator) Generate(seed int64) Board {
	s := newStream(seed)
	letters := make([]byte, g.size*g.size)
	for i := range letters {
		letters[i] = g.letter(s.uniform(g.total))
	}
	return Board{size: g.size, letters: letters}
}

// letter maps a draw in [0, total) to a letter via the cumulative table.
func (g *Generator) letter(v uint32) byte {
	for i, c := range g.cum {
		if v < c {
			return 'a' + byte(i)
		}
	}
	panic("board: draw out of range")
}

// stream yields uint32 draws from a seed-keyed ChaCha20 keystream.
type stream struct {
	c   *chacha20.Cipher
	buf [64]byte
	pos int
}

func newStream(seed int64) *stream {
	var key [chacha20.KeySize]byte
	binary.BigEndian.PutUint64(key[:8], uint64(seed))
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above; this cannot fail.
		panic("board: chacha20: " + err.Error())
	}
	s := &stream{c: c}
	s.pos = len(s.buf)
	return s
}

// next returns the next little-endian keystream word.
func (s *stream) next() uint32 {
	if s.pos == len(s.buf) {
		for i := range s.buf {
			s.buf[i] = 0
		}
		s.c.XORKeyStream(s.buf[:], s.buf[:])
		s.pos = 0
	}
	v := binary.LittleEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v
}

// uniform returns an unbiased draw in [0, n), redrawing the few values that
// would skew the modulus.
func (s *stream) uniform(n uint32) uint32 {
	thresh := -n % n
	for {
		if v := s.next(); v >= thresh {
			return v % n
		}
	}
}
