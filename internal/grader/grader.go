package grader

import (
	"strings"

	"github.com/wordboard/backend/internal/domain/questionbank"
)

// Grader grades a submitted answer against a question.
// It returns nil when the question is not auto-graded, together with the
// answer in the form it should be logged.
type Grader interface {
	Grade(q questionbank.Record, submitted string) (correct *bool, normalized string)
}

// ExactMatch grades multiple-choice questions by trimmed string equality
// and leaves free-text questions ungraded.
type ExactMatch struct{}

// Compile-time check: ExactMatch satisfies the Grader interface.
var _ Grader = ExactMatch{}

func (ExactMatch) Grade(q questionbank.Record, submitted string) (*bool, string) {
	normalized := strings.TrimSpace(submitted)
	if !q.IsMultipleChoice() {
		return nil, normalized
	}
	ok := normalized == strings.TrimSpace(q.Answer)
	return &ok, normalized
}

// Grade is ExactMatch{}.Grade.
func Grade(q questionbank.Record, submitted string) (*bool, string) {
	return ExactMatch{}.Grade(q, submitted)
}
