package questionbank_test

import (
	"reflect"
	"testing"

	"github.com/wordboard/backend/internal/domain/questionbank"
)

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		raw  []string
		want []string
	}{
		{nil, []string{"all"}},
		{[]string{}, []string{"all"}},
		{[]string{"all"}, []string{"all"}},
		{[]string{"ALL"}, []string{"all"}},
		{[]string{"all", "3", "7"}, []string{"3", "7"}},
		{[]string{"7", "3", "3"}, []string{"3", "7"}},
		{[]string{"3", "7"}, []string{"3", "7"}},
		{[]string{"99"}, []string{"all"}},
		{[]string{"0", "11", "abc"}, []string{"all"}},
		{[]string{"all", "99", "5"}, []string{"5"}},
		{[]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, []string{"all"}},
	}

	for _, tt := range tests {
		got := questionbank.NormalizeDifficulty(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NormalizeDifficulty(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeDifficulty_Idempotent(t *testing.T) {
	inputs := [][]string{
		{},
		{"all"},
		{"all", "3", "7"},
		{"3", "7"},
		{"99"},
		{" 4 ", "x", "all", "10"},
	}

	for _, in := range inputs {
		once := questionbank.NormalizeDifficulty(in)
		twice := questionbank.NormalizeDifficulty(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("not idempotent for %v: %v then %v", in, once, twice)
		}
	}
}

func TestDifficultyLevels(t *testing.T) {
	if got := questionbank.DifficultyLevels([]string{"all"}); len(got) != 10 || got[0] != 1 || got[9] != 10 {
		t.Errorf("expected 1..10, got %v", got)
	}
	if got := questionbank.DifficultyLevels(nil); len(got) != 10 {
		t.Errorf("expected empty selection to expand to 10 levels, got %v", got)
	}
	if got := questionbank.DifficultyLevels([]string{"7", "all", "2"}); !reflect.DeepEqual(got, []int{2, 7}) {
		t.Errorf("expected [2 7], got %v", got)
	}
}

func TestDifficultyFromRange(t *testing.T) {
	tests := []struct {
		lo, hi int
		want   []string
	}{
		{1, 10, []string{"all"}},
		{3, 5, []string{"3", "4", "5"}},
		{5, 3, []string{"3", "4", "5"}},
		{-2, 2, []string{"1", "2"}},
		{9, 42, []string{"9", "10"}},
		{4, 4, []string{"4"}},
	}

	for _, tt := range tests {
		got := questionbank.DifficultyFromRange(tt.lo, tt.hi)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DifficultyFromRange(%d, %d) = %v, want %v", tt.lo, tt.hi, got, tt.want)
		}
	}
}
