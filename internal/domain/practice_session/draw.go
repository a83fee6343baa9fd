package practicesession

import (
	"math/rand"

	"github.com/wordboard/backend/internal/domain/questionbank"
)

// Randomizer is the source of randomness for draws and option shuffles.
// *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) Intn(n int) int                     { return rand.Intn(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRandom uses the process-global math/rand source.
var DefaultRandom Randomizer = globalRand{}

func orDefault(rng Randomizer) Randomizer {
	if rng == nil {
		return DefaultRandom
	}
	return rng
}

// Draw picks one record uniformly at random from pool. With noRepeat, ids
// in seen are excluded first. It returns false when nothing is left to draw.
// Draw has no side effects; recording the draw is up to the caller.
func Draw(pool []questionbank.Record, seen map[string]struct{}, noRepeat bool, rng Randomizer) (questionbank.Record, bool) {
	candidates := pool
	if noRepeat && len(seen) > 0 {
		candidates = make([]questionbank.Record, 0, len(pool))
		for _, r := range pool {
			if _, ok := seen[r.ID]; !ok {
				candidates = append(candidates, r)
			}
		}
	}

	if len(candidates) == 0 {
		return questionbank.Record{}, false
	}
	return candidates[orDefault(rng).Intn(len(candidates))], true
}

// OptionOrders memoizes the option order of each question by id, so a
// question keeps the same choice order for as long as it is on screen.
// The map must be non-nil.
type OptionOrders map[string][]string

// Stable returns the memoized order for qid, computing it on first use:
// a shuffle of raw when shuffle is set, raw order otherwise. Later calls
// ignore shuffle and return the memoized order.
func (o OptionOrders) Stable(qid string, raw []string, shuffle bool, rng Randomizer) []string {
	if len(raw) == 0 {
		return []string{}
	}
	if cached, ok := o[qid]; ok && len(cached) > 0 {
		return clone(cached)
	}

	opts := clone(raw)
	if shuffle {
		orDefault(rng).Shuffle(len(opts), func(i, j int) {
			opts[i], opts[j] = opts[j], opts[i]
		})
	}
	o[qid] = opts
	return clone(opts)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
