package questionbank

import (
	"strings"

	"github.com/wordboard/backend/internal/domain/category"
)

// Criteria selects a pool out of a bank. The zero value passes everything.
type Criteria struct {
	Type         category.Type
	Difficulties []int // empty means every difficulty
	TagQuery     string
}

// Filter returns the records of bank that satisfy c, in bank order.
// It does not modify bank.
func Filter(bank []Record, c Criteria) []Record {
	m := c.matcher()
	pool := make([]Record, 0, len(bank))
	for _, r := range bank {
		if m.matches(r) {
			pool = append(pool, r)
		}
	}
	return pool
}

// Matches reports whether a single record passes c.
func (c Criteria) Matches(r Record) bool {
	return c.matcher().matches(r)
}

type matcher struct {
	typ   category.Type
	diffs map[int]struct{}
	tag   string
}

func (c Criteria) matcher() matcher {
	m := matcher{typ: c.Type, tag: strings.ToLower(c.TagQuery)}
	if len(c.Difficulties) > 0 {
		m.diffs = make(map[int]struct{}, len(c.Difficulties))
		for _, d := range c.Difficulties {
			m.diffs[d] = struct{}{}
		}
	}
	return m
}

func (m matcher) matches(r Record) bool {
	if !m.typ.Matches(r.Type) {
		return false
	}
	if m.diffs != nil {
		if _, ok := m.diffs[r.DifficultyNum]; !ok {
			return false
		}
	}
	if m.tag != "" && !strings.Contains(strings.ToLower(r.Tags), m.tag) {
		return false
	}
	return true
}
