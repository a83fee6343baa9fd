package history

import (
	"fmt"
	"time"
)

// TimeLayout is how attempt times are rendered in exports.
const TimeLayout = "2006-01-02 15:04:05"

// Attempt is one logged answer.
type Attempt struct {
	Time          time.Time `json:"time"`
	QuestionID    string    `json:"id"`
	Type          string    `json:"type"`
	Question      string    `json:"question"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	Correct       *bool     `json:"correct"` // nil when ungraded
}

// Graded reports whether the attempt carries a verdict.
func (a Attempt) Graded() bool {
	return a.Correct != nil
}

// Ledger is the append-only attempt history of one session.
type Ledger struct {
	entries []Attempt
}

// NewLedger returns a ledger holding a copy of entries.
func NewLedger(entries []Attempt) *Ledger {
	l := &Ledger{}
	l.entries = append(l.entries, entries...)
	return l
}

// Append adds a to the end of the ledger.
func (l *Ledger) Append(a Attempt) {
	l.entries = append(l.entries, a)
}

// Clear drops every entry.
func (l *Ledger) Clear() {
	l.entries = nil
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []Attempt {
	out := make([]Attempt, len(l.entries))
	copy(out, l.entries)
	return out
}

// Summary is the aggregate shown under the history table.
type Summary struct {
	Total        int    `json:"total"`
	CorrectCount int    `json:"correct_count"`
	Accuracy     string `json:"accuracy"`
}

// Summarize counts entries and correct answers. Ungraded entries count
// toward the total but never toward the correct count.
func Summarize(entries []Attempt) Summary {
	s := Summary{Total: len(entries), Accuracy: "0%"}
	for _, a := range entries {
		if a.Graded() && *a.Correct {
			s.CorrectCount++
		}
	}
	if s.Total > 0 {
		s.Accuracy = fmt.Sprintf("%.1f%%", float64(s.CorrectCount)/float64(s.Total)*100)
	}
	return s
}
