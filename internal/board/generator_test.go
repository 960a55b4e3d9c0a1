package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestGenerateDeterministic(t *testing.T) {
	is := is.New(t)

	for _, seed := range []int64{0, 1, 42, -7, 1 << 40} {
		a := Generate(seed)
		b := Generate(seed)
		is.Equal(a.String(), b.String())
	}
}

func TestGenerateIndependentOfCallOrder(t *testing.T) {
	is := is.New(t)

	first := Generate(5)
	_ = Generate(6)
	_ = Generate(7)
	again := Generate(5)
	is.Equal(first.String(), again.String())
}

func TestGenerateValidBoards(t *testing.T) {
	is := is.New(t)

	seen := make(map[string]struct{})
	for seed := int64(0); seed < 20; seed++ {
		b := Generate(seed)
		is.NoErr(b.Validate())
		is.Equal(b.Size(), DefaultSize)
		seen[b.String()] = struct{}{}
	}
	// Distinct seeds land on distinct boards.
	is.Equal(len(seen), 20)
}

func TestGeneratorCustomSize(t *testing.T) {
	is := is.New(t)

	g, err := NewGenerator(3, EnglishWeights)
	is.NoErr(err)

	b := g.Generate(7)
	is.NoErr(b.Validate())
	is.Equal(b.Size(), 3)
	is.Equal(b.Len(), 9)
	is.Equal(b.String(), g.Generate(7).String())
}

func TestGeneratorSingleLetterWeights(t *testing.T) {
	is := is.New(t)

	var weights [26]int
	weights[25] = 1 // z only
	g, err := NewGenerator(2, weights)
	is.NoErr(err)
	is.Equal(g.Generate(99).String(), "zzzz")
}

func TestNewGeneratorRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		weights [26]int
	}{
		{"size too small", 1, EnglishWeights},
		{"negative weight", 4, func() [26]int { w := EnglishWeights; w[3] = -1; return w }()},
		{"all zero", 4, [26]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGenerator(tt.size, tt.weights); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
