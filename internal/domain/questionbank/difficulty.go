package questionbank

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wordboard/backend/internal/domain/level"
)

// AllDifficulties is the selection sentinel meaning every level.
const AllDifficulties = "all"

// NormalizeDifficulty canonicalizes a difficulty selection coming from a
// multi-select, a range slider or the "all" sentinel.
//
// Explicit levels win over the sentinel. Invalid or out-of-range tokens are
// dropped. When nothing valid is left, or the explicit levels cover the
// whole range, the result is ["all"]. Otherwise the levels come back sorted
// and de-duplicated. Normalizing a canonical selection returns it unchanged.
func NormalizeDifficulty(raw []string) []string {
	picked := make(map[int]struct{})
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if strings.EqualFold(tok, AllDifficulties) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || !level.Level(n).Valid() {
			continue
		}
		picked[n] = struct{}{}
	}

	if len(picked) == 0 || len(picked) == len(level.All()) {
		return []string{AllDifficulties}
	}

	levels := make([]int, 0, len(picked))
	for n := range picked {
		levels = append(levels, n)
	}
	sort.Ints(levels)

	out := make([]string, len(levels))
	for i, n := range levels {
		out[i] = strconv.Itoa(n)
	}
	return out
}

// DifficultyLevels expands a selection to its level numbers.
// ["all"] expands to 1..10.
func DifficultyLevels(sel []string) []int {
	canonical := NormalizeDifficulty(sel)
	if len(canonical) == 1 && canonical[0] == AllDifficulties {
		all := level.All()
		levels := make([]int, len(all))
		for i, l := range all {
			levels[i] = int(l)
		}
		return levels
	}

	levels := make([]int, len(canonical))
	for i, tok := range canonical {
		levels[i], _ = strconv.Atoi(tok)
	}
	return levels
}

// DifficultyFromRange converts an inclusive slider range into a canonical
// selection. Bounds are clamped and may be given in either order.
func DifficultyFromRange(lo, hi int) []string {
	if lo > hi {
		lo, hi = hi, lo
	}
	from, to := level.Clamp(lo), level.Clamp(hi)

	raw := make([]string, 0, to-from+1)
	for l := from; l <= to; l++ {
		raw = append(raw, l.String())
	}
	return NormalizeDifficulty(raw)
}
