package practicesession

import (
	"github.com/wordboard/backend/internal/domain/category"
	"github.com/wordboard/backend/internal/domain/questionbank"
)

// Preferences holds the display toggles of a session.
type Preferences struct {
	ShuffleOptions bool `json:"shuffle_options"` // shuffle choices the first time a question is shown
	NoRepeat       bool `json:"no_repeat"`       // skip already drawn questions until reset
}

// DefaultPreferences shuffles options and avoids repeats.
func DefaultPreferences() Preferences {
	return Preferences{
		ShuffleOptions: true,
		NoRepeat:       true,
	}
}

// Filter is the session's selection over its bank. Difficulty is kept in
// canonical selection form (see questionbank.NormalizeDifficulty).
type Filter struct {
	Type       category.Type `json:"type"`
	Difficulty []string      `json:"difficulty"`
	TagQuery   string        `json:"tag_query"`
}

// DefaultFilter selects every question.
func DefaultFilter() Filter {
	return Filter{
		Type:       category.All,
		Difficulty: []string{questionbank.AllDifficulties},
		TagQuery:   "",
	}
}

// Normalized returns f with its type and difficulty in canonical form.
func (f Filter) Normalized() Filter {
	t := category.Normalize(string(f.Type))
	if t.IsAll() {
		t = category.All
	}
	return Filter{
		Type:       t,
		Difficulty: questionbank.NormalizeDifficulty(f.Difficulty),
		TagQuery:   f.TagQuery,
	}
}

// Criteria converts f for the filter engine.
func (f Filter) Criteria() questionbank.Criteria {
	return questionbank.Criteria{
		Type:         f.Type,
		Difficulties: questionbank.DifficultyLevels(f.Difficulty),
		TagQuery:     f.TagQuery,
	}
}
