package level

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a difficulty tier. Levels sit one step below the combined bank:
// each level owns one CSV file and the bank is their concatenation in
// level order.
type Level int

const (
	Min Level = 1
	Max Level = 10
)

// All returns every level in ascending order.
func All() []Level {
	levels := make([]Level, 0, Max-Min+1)
	for l := Min; l <= Max; l++ {
		levels = append(levels, l)
	}
	return levels
}

// Valid reports whether l is inside [Min, Max].
func (l Level) Valid() bool {
	return l >= Min && l <= Max
}

// Clamp pulls any integer into [Min, Max].
func Clamp(v int) Level {
	if v < int(Min) {
		return Min
	}
	if v > int(Max) {
		return Max
	}
	return Level(v)
}

// Parse reads a level from its decimal form. Out-of-range values are rejected.
func Parse(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("level %q is not a number", s)
	}
	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("level %d out of range %d..%d", n, Min, Max)
	}
	return l, nil
}

// FileName is the per-level bank file name, e.g. "questions_level_3.csv".
func (l Level) FileName() string {
	return fmt.Sprintf("questions_level_%d.csv", int(l))
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}
