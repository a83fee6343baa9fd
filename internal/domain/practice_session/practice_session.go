package practicesession

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/wordboard/backend/internal/domain/history"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/grader"
	"github.com/wordboard/backend/internal/id"
)

var (
	ErrNoCurrentQuestion = errors.New("no question has been drawn")
	ErrEmptyAnswer       = errors.New("answer is empty")
)

// Session is the whole state of one browsing session. It is the single
// source of truth for filters, preferences, draws and history.
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	Bank    []questionbank.Record
	Seen    map[string]struct{}
	Current *questionbank.Record
	Options OptionOrders
	History *history.Ledger

	Filter Filter
	Prefs  Preferences
}

// New creates a session over bank with default filter and preferences.
func New(bank []questionbank.Record) *Session {
	now := time.Now()
	return &Session{
		ID:        id.GenerateID(),
		CreatedAt: now,
		UpdatedAt: now,
		Bank:      bank,
		Seen:      make(map[string]struct{}),
		Options:   make(OptionOrders),
		History:   history.NewLedger(nil),
		Filter:    DefaultFilter(),
		Prefs:     DefaultPreferences(),
	}
}

// Pool is the bank narrowed by the current filter.
func (s *Session) Pool() []questionbank.Record {
	return questionbank.Filter(s.Bank, s.Filter.Criteria())
}

// Stats describes the pool relative to what has been drawn.
type Stats struct {
	Total     int `json:"total"`
	Seen      int `json:"seen"`
	Remaining int `json:"remaining"`
}

func (s *Session) Stats() Stats {
	pool := s.Pool()
	ids := make(map[string]struct{}, len(pool))
	for _, r := range pool {
		ids[r.ID] = struct{}{}
	}

	seen := 0
	for qid := range s.Seen {
		if _, ok := ids[qid]; ok {
			seen++
		}
	}
	return Stats{
		Total:     len(pool),
		Seen:      seen,
		Remaining: max(0, len(pool)-seen),
	}
}

// SetFilter replaces the filter, normalizing type and difficulty.
func (s *Session) SetFilter(f Filter) {
	s.Filter = f.Normalized()
}

func (s *Session) SetPreferences(p Preferences) {
	s.Prefs = p
}

// Draw picks the next question from the pool. On success the question
// becomes current, its id is marked seen and its option order is fixed.
// It returns false when the pool is exhausted and leaves state untouched.
func (s *Session) Draw(rng Randomizer) (questionbank.Record, bool) {
	rec, ok := Draw(s.Pool(), s.Seen, s.Prefs.NoRepeat, rng)
	if !ok {
		return rec, false
	}

	s.Seen[rec.ID] = struct{}{}
	s.Current = &rec
	s.Options.Stable(rec.ID, rec.Options, s.Prefs.ShuffleOptions, rng)
	return rec, true
}

// CurrentOptions returns the stable option order of the current question,
// or an empty slice for free-text questions and when nothing is drawn.
func (s *Session) CurrentOptions(rng Randomizer) []string {
	if s.Current == nil {
		return []string{}
	}
	return s.Options.Stable(s.Current.ID, s.Current.Options, s.Prefs.ShuffleOptions, rng)
}

// Submit grades answer against the current question and logs the attempt.
// Blank answers are rejected and nothing is logged.
func (s *Session) Submit(answer string, g grader.Grader, now time.Time) (history.Attempt, error) {
	if s.Current == nil {
		return history.Attempt{}, ErrNoCurrentQuestion
	}
	if strings.TrimSpace(answer) == "" {
		return history.Attempt{}, ErrEmptyAnswer
	}
	if g == nil {
		g = grader.ExactMatch{}
	}

	correct, normalized := g.Grade(*s.Current, answer)
	attempt := history.Attempt{
		Time:          now,
		QuestionID:    s.Current.ID,
		Type:          s.Current.Type,
		Question:      s.Current.Question,
		UserAnswer:    normalized,
		CorrectAnswer: strings.TrimSpace(s.Current.Answer),
		Correct:       correct,
	}
	s.History.Append(attempt)
	return attempt, nil
}

// Reveal returns the reference answer of the current question.
func (s *Session) Reveal() (string, error) {
	if s.Current == nil {
		return "", ErrNoCurrentQuestion
	}
	return s.Current.Answer, nil
}

// Reset forgets draws and option orders. History is kept.
func (s *Session) Reset() {
	s.Seen = make(map[string]struct{})
	s.Current = nil
	s.Options = make(OptionOrders)
}

func (s *Session) ClearHistory() {
	s.History.Clear()
}

// ReplaceBank swaps the whole bank, e.g. after a rebuild from level files.
func (s *Session) ReplaceBank(bank []questionbank.Record) {
	s.Bank = bank
}

func (s *Session) Summary() history.Summary {
	return history.Summarize(s.History.Entries())
}

// SeenIDs returns the seen set as a sorted slice.
func (s *Session) SeenIDs() []string {
	out := make([]string, 0, len(s.Seen))
	for qid := range s.Seen {
		out = append(out, qid)
	}
	sort.Strings(out)
	return out
}
