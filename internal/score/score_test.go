package score

import (
	"testing"

	"github.com/matryer/is"
)

func TestTableWord(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative length", -1, 0},
		{"empty word", 0, 0},
		{"below minimum", 2, 0},
		{"three letters", 3, 100},
		{"four letters", 4, 400},
		{"five letters", 5, 800},
		{"six letters", 6, 1400},
		{"seven letters", 7, 1800},
		{"eight letters", 8, 2200},
		{"nine letters", 9, 2600},
		{"twelve letters", 12, 3800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Default.Word(tt.n); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTableWordEmptyTable(t *testing.T) {
	is := is.New(t)
	var empty Table
	is.Equal(empty.Word(5), 0)
}

func TestTableWords(t *testing.T) {
	is := is.New(t)

	table := Table{Points: []int{0, 0, 0, 1, 2, 3, 5, 7, 10}}

	is.Equal(table.Words([]string{"cat", "act", "tac", "cats"}), 5)
	is.Equal(table.Words(nil), 0)
	is.Equal(table.Words([]string{"cat", "cat", "cat"}), 1) // duplicates count once
	is.Equal(Default.Words([]string{"horse", "horses"}), 2200)
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"default", Default, false},
		{"flat tail", Table{Points: []int{0, 0, 0, 1, 2, 3, 5, 7, 10}}, false},
		{"empty", Table{}, true},
		{"decreasing", Table{Points: []int{0, 5, 3}}, true},
		{"negative step", Table{Points: []int{0, 1}, Step: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultNeverPaysLessForLonger(t *testing.T) {
	is := is.New(t)
	prev := 0
	for n := 0; n <= 20; n++ {
		got := Default.Word(n)
		is.True(got >= prev)
		prev = got
	}
}
