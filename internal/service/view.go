package service

import (
	"errors"
	"time"

	"github.com/wordboard/backend/internal/domain/history"
	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/media"
)

// QuestionView is the current question as shown to the learner. The
// reference answer is left out until revealed.
type QuestionView struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Question   string     `json:"question"`
	Passage    string     `json:"passage,omitempty"`
	Options    []string   `json:"options"`
	Difficulty int        `json:"difficulty"`
	Tags       string     `json:"tags,omitempty"`
	Audio      *media.Ref `json:"audio,omitempty"`
	Image      *media.Ref `json:"image,omitempty"`
}

// SessionView is the read model of a session.
type SessionView struct {
	ID        string                      `json:"id"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	BankSize  int                         `json:"bank_size"`
	Filter    practicesession.Filter      `json:"filter"`
	Prefs     practicesession.Preferences `json:"preferences"`
	Stats     practicesession.Stats       `json:"stats"`
	Current   *QuestionView               `json:"current,omitempty"`
	Summary   history.Summary             `json:"summary"`
}

// Result pairs the state after a command with what the command did.
type Result struct {
	Session SessionView             `json:"session"`
	Outcome practicesession.Outcome `json:"outcome"`
}

func (s *SessionService) view(sess *practicesession.Session) (SessionView, []string) {
	v := SessionView{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
		BankSize:  len(sess.Bank),
		Filter:    sess.Filter,
		Prefs:     sess.Prefs,
		Stats:     sess.Stats(),
		Summary:   sess.Summary(),
	}
	if sess.Current == nil {
		return v, nil
	}

	q, warnings := s.questionView(*sess.Current, sess.CurrentOptions(s.rng))
	v.Current = &q
	return v, warnings
}

func (s *SessionService) questionView(rec questionbank.Record, options []string) (QuestionView, []string) {
	q := QuestionView{
		ID:         rec.ID,
		Type:       rec.Type,
		Question:   rec.Question,
		Passage:    rec.Passage,
		Options:    options,
		Difficulty: rec.DifficultyNum,
		Tags:       rec.Tags,
	}

	var warnings []string
	q.Image, warnings = s.resolveMedia(rec.ImageURL, "image", warnings)
	q.Audio, warnings = s.resolveMedia(rec.AudioURL, "audio", warnings)
	return q, warnings
}

func (s *SessionService) resolveMedia(src, kind string, warnings []string) (*media.Ref, []string) {
	if s.media == nil {
		return nil, warnings
	}
	ref, ok, err := s.media.Resolve(src)
	if !ok {
		return nil, warnings
	}
	if err != nil {
		if !errors.Is(err, media.ErrMissing) {
			s.logger.Warn("media lookup failed", "kind", kind, "source", src, "error", err)
		}
		return nil, append(warnings, kind+" unavailable: "+src)
	}
	return &ref, warnings
}
