package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		letters string
		wantErr bool
	}{
		{"two by two", 2, "abcd", false},
		{"four by four", 4, "abcdefghijklmnop", false},
		{"mixed case", 2, "AbCd", false},
		{"size too small", 1, "a", true},
		{"too few letters", 3, "abcd", true},
		{"too many letters", 2, "abcde", true},
		{"digit", 2, "ab1d", true},
		{"space", 2, "ab d", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.size, tt.letters)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err := b.Validate(); err != nil {
				t.Errorf("expected valid board, got %v", err)
			}
		})
	}
}

func TestNewLowercases(t *testing.T) {
	is := is.New(t)

	b, err := New(2, "AbCd")
	is.NoErr(err)
	is.Equal(b.String(), "abcd")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantSize int
		wantErr  bool
	}{
		{"flat", "catatstss", 3, false},
		{"spaced rows", "cat ats tss", 3, false},
		{"newlines and case", "CAT\nATS\nTSS", 3, false},
		{"punctuated", "c,a,t,a,t,s,t,s,s", 3, false},
		{"four by four", "abcdefghijklmnop", 4, false},
		{"two by two", "abcd", 2, false},
		{"not a square", "abcde", 0, true},
		{"single letter", "a", 0, true},
		{"empty", "", 0, true},
		{"no letters at all", "123 456 789", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if b.Size() != tt.wantSize {
				t.Errorf("expected size %d, got %d", tt.wantSize, b.Size())
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	is := is.New(t)

	b, err := Parse("cat ats tss")
	is.NoErr(err)

	is.Equal(b.Size(), 3)
	is.Equal(b.Len(), 9)
	is.Equal(b.String(), "catatstss")
	is.Equal(b.Rows(), []string{"cat", "ats", "tss"})
	is.Equal(b.At(0, 0), byte('c'))
	is.Equal(b.At(1, 2), byte('s'))
	is.Equal(b.At(2, 0), byte('t'))
	is.Equal(b.Letter(0), byte('c'))
	is.Equal(b.Letter(8), byte('s'))
}

func TestValidateZeroBoard(t *testing.T) {
	is := is.New(t)

	var b Board
	is.True(errors.Is(b.Validate(), ErrInvalid))
}

func TestNeighbors(t *testing.T) {
	adj := Neighbors(3)

	assert.Len(t, adj, 9)
	assert.ElementsMatch(t, []int{1, 3, 4}, adj[0], "corner")
	assert.ElementsMatch(t, []int{0, 2, 3, 4, 5}, adj[1], "edge")
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, adj[4], "center")
	assert.ElementsMatch(t, []int{4, 5, 7}, adj[8], "far corner")
}

func TestNeighborsDegrees(t *testing.T) {
	tests := []struct {
		name string
		size int
		cell int
		want int
	}{
		{"2x2 corner", 2, 0, 3},
		{"2x2 other corner", 2, 3, 3},
		{"4x4 corner", 4, 0, 3},
		{"4x4 top edge", 4, 1, 5},
		{"4x4 interior", 4, 5, 8},
		{"4x4 interior low", 4, 10, 8},
		{"4x4 bottom corner", 4, 15, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := Neighbors(tt.size)
			if got := len(adj[tt.cell]); got != tt.want {
				t.Errorf("expected %d neighbors, got %d", tt.want, got)
			}
		})
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		adj := Neighbors(size)
		for i, list := range adj {
			for _, j := range list {
				assert.Contains(t, adj[j], i, "size %d: %d adjacent to %d but not back", size, i, j)
			}
		}
	}
}
