package solver

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/score"
	"github.com/robalobadob/wordhunt/internal/words"
)

// testTable pays 1/2/3/5/7 points for lengths three through seven and a
// flat 10 beyond that, which keeps expected totals easy to read.
var testTable = score.Table{Points: []int{0, 0, 0, 1, 2, 3, 5, 7, 10}}

func mustDict(t *testing.T, list ...string) *words.Dictionary {
	t.Helper()
	d, err := words.FromList(list)
	if err != nil {
		t.Fatalf("dictionary: %v", err)
	}
	return d
}

func mustBoard(t *testing.T, s string) board.Board {
	t.Helper()
	b, err := board.Parse(s)
	if err != nil {
		t.Fatalf("board %q: %v", s, err)
	}
	return b
}

func TestSolveKnownBoard(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat", "act", "tac", "cats")
	b := mustBoard(t, "cat ats tss")

	res, err := New(dict, Config{Table: testTable}).Solve(b)
	is.NoErr(err)
	is.Equal(res.Words, []string{"cats", "act", "cat", "tac"})
	is.Equal(res.Score, 5)
}

func TestSolveDefaultTable(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat", "act", "tac", "cats")
	b := mustBoard(t, "cat ats tss")

	res, err := Solve(b, dict)
	is.NoErr(err)
	is.Equal(res.Score, 700) // three 3-letter words at 100, one 4-letter at 400
	is.Equal(res.Score, score.Default.Words(res.Words))
}

func TestSolveSkipsUnreachableWords(t *testing.T) {
	is := is.New(t)

	// "scat" is in the dictionary but no walk can trace it: no s borders
	// the only c. "cast" rides the diagonal a(0,1) to s(1,2).
	dict := mustDict(t, "cat", "act", "tac", "cats", "scat", "cast")
	b := mustBoard(t, "cat ats tss")

	res, err := New(dict, Config{Table: testTable}).Solve(b)
	is.NoErr(err)
	is.Equal(res.Words, []string{"cast", "cats", "act", "cat", "tac"})
}

func TestSolveWordCountsOnce(t *testing.T) {
	is := is.New(t)

	// Four distinct paths spell "cat" on this board; the result records it
	// a single time.
	dict := mustDict(t, "cat")
	b := mustBoard(t, "cat ats tss")

	res, err := Solve(b, dict)
	is.NoErr(err)
	is.Equal(res.Words, []string{"cat"})
}

func TestSolveEmptyResult(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "dog", "fish")
	b := mustBoard(t, "cat ats tss")

	res, err := Solve(b, dict)
	is.NoErr(err)
	is.Equal(len(res.Words), 0)
	is.Equal(res.Score, 0)
}

func TestSolvePrefixFreeBoard(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat", "dog")
	b, err := board.New(2, "zzzz")
	is.NoErr(err)

	res, err := Solve(b, dict)
	is.NoErr(err)
	is.Equal(len(res.Words), 0)
}

func TestSolveMinWordLen(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat", "act", "tac", "cats")
	b := mustBoard(t, "cat ats tss")

	res, err := New(dict, Config{MinWordLen: 4, Table: testTable}).Solve(b)
	is.NoErr(err)
	is.Equal(res.Words, []string{"cats"})
}

func TestSolveMaxPathLen(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat", "cats")
	b := mustBoard(t, "cat ats tss")

	res, err := New(dict, Config{MaxPathLen: 3, Table: testTable}).Solve(b)
	is.NoErr(err)
	is.Equal(res.Words, []string{"cat"})
}

func TestSolveBudgetExceeded(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat", "act", "tac", "cats")
	b := mustBoard(t, "cat ats tss")

	_, err := New(dict, Config{MaxVisits: 1, Table: testTable}).Solve(b)
	is.True(errors.Is(err, ErrBudgetExceeded))
}

func TestSolveInvalidBoard(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat")
	var zero board.Board

	_, err := Solve(zero, dict)
	is.True(errors.Is(err, board.ErrInvalid))
}

func TestSolveNilDictionary(t *testing.T) {
	is := is.New(t)

	b := mustBoard(t, "cat ats tss")
	_, err := New(nil, DefaultConfig()).Solve(b)
	is.True(err != nil)
}

func TestSolveDeterministic(t *testing.T) {
	is := is.New(t)

	dict := mustDict(t, "cat", "act", "tac", "cats", "cast")
	b := mustBoard(t, "cat ats tss")
	s := New(dict, DefaultConfig())

	first, err := s.Solve(b)
	is.NoErr(err)
	second, err := s.Solve(b)
	is.NoErr(err)
	is.Equal(first, second)
}

func TestSolveResultsAreDictionaryWords(t *testing.T) {
	dict := mustDict(t, sampleWords...)
	b := board.Generate(42)

	res, err := Solve(b, dict)
	assert.NoError(t, err)
	for _, w := range res.Words {
		assert.True(t, dict.Contains(w), "found %q which is not a dictionary word", w)
		assert.GreaterOrEqual(t, len(w), words.MinWordLen)
	}
}

// sampleWords is a small mixed-length list for searches over generated
// boards, where the findable subset is not known in advance.
var sampleWords = []string{
	"ant", "art", "ate", "bat", "bet", "cab", "car", "cat", "cot", "dog",
	"ear", "eat", "net", "nit", "not", "oat", "one", "ore", "rat", "rot",
	"sat", "sea", "set", "sit", "tan", "tar", "tea", "ten", "tie", "tin",
	"toe", "ton", "arts", "ears", "eats", "nets", "rats", "seat", "tans",
	"tars", "tear", "tears", "stone", "notes", "onset", "tones",
}
