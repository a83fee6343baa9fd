// internal/service/session.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/wordboard/backend/internal/bankfile"
	"github.com/wordboard/backend/internal/domain/history"
	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/grader"
	"github.com/wordboard/backend/internal/id"
	"github.com/wordboard/backend/internal/media"
	"github.com/wordboard/backend/internal/store"
)

// Paths locates the aggregate bank files.
type Paths struct {
	AllFile   string // canonical aggregate, written on rebuild
	AliasFile string // copy new sessions load from
}

// SessionService runs commands against stored sessions. Every command
// loads the session, applies it and saves it back while holding one lock,
// so commands never interleave.
type SessionService struct {
	store  store.Store
	levels *bankfile.Aggregator
	paths  Paths
	media  *media.Resolver
	grader grader.Grader
	rng    practicesession.Randomizer
	now    func() time.Time
	logger *slog.Logger

	mu sync.Mutex
}

// NewSessionService creates a SessionService. resolver may be nil, in which
// case questions carry no media references.
func NewSessionService(s store.Store, levels *bankfile.Aggregator, paths Paths, resolver *media.Resolver, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  s,
		levels: levels,
		paths:  paths,
		media:  resolver,
		grader: grader.ExactMatch{},
		rng:    practicesession.DefaultRandom,
		now:    time.Now,
		logger: logger,
	}
}

// WithRandom swaps the randomness source, mainly for tests.
func (s *SessionService) WithRandom(rng practicesession.Randomizer) *SessionService {
	s.rng = rng
	return s
}

// WithClock swaps the time source, mainly for tests.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

func (s *SessionService) env() practicesession.Env {
	return practicesession.Env{Rand: s.rng, Grader: s.grader, Now: s.now}
}

// Create starts a session over the alias bank. An unreadable bank is not
// fatal: the session starts empty and the problem comes back as a warning.
func (s *SessionService) Create(ctx context.Context) (SessionView, []string, error) {
	bank, warnings := s.loadBank()

	sess := practicesession.New(bank)
	now := s.now()
	sess.CreatedAt, sess.UpdatedAt = now, now

	if err := s.store.SaveSession(ctx, sess.Snapshot()); err != nil {
		return SessionView{}, nil, err
	}

	s.logger.Info("session created", "session_id", sess.ID, "questions", len(bank))
	v, mediaWarnings := s.view(sess)
	return v, append(warnings, mediaWarnings...), nil
}

func (s *SessionService) Get(ctx context.Context, id string) (SessionView, []string, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return SessionView{}, nil, err
	}
	v, warnings := s.view(sess)
	return v, warnings, nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteSession(ctx, id); err != nil {
		return err
	}
	s.logger.Info("session deleted", "session_id", id)
	return nil
}

// Apply runs cmd against the session. A failed command is not saved.
func (s *SessionService) Apply(ctx context.Context, id string, cmd practicesession.Command) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return Result{}, err
	}

	out, err := sess.Apply(cmd, s.env())
	if err != nil {
		return Result{}, err
	}

	if cmd.Kind != practicesession.CmdReveal && !out.Exhausted {
		if err := s.store.SaveSession(ctx, sess.Snapshot()); err != nil {
			return Result{}, err
		}
	}

	v, warnings := s.view(sess)
	out.Warnings = append(out.Warnings, warnings...)
	if len(out.Warnings) > 0 {
		s.logger.Warn("command warnings", "session_id", id, "command", cmd.Kind, "warnings", out.Warnings)
	}
	return Result{Session: v, Outcome: out}, nil
}

// Pool lists the filtered questions of a session with its draw stats.
func (s *SessionService) Pool(ctx context.Context, id string) ([]questionbank.Record, practicesession.Stats, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, practicesession.Stats{}, err
	}
	return sess.Pool(), sess.Stats(), nil
}

// History returns the attempts of a session, oldest first.
func (s *SessionService) History(ctx context.Context, id string) ([]history.Attempt, history.Summary, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, history.Summary{}, err
	}
	entries := sess.History.Entries()
	return entries, history.Summarize(entries), nil
}

// ExportHistory writes the session history as CSV.
func (s *SessionService) ExportHistory(ctx context.Context, id string, w io.Writer) error {
	entries, _, err := s.History(ctx, id)
	if err != nil {
		return err
	}
	return history.WriteCSV(w, entries)
}

// ReloadBank rebuilds the aggregate from the level files and swaps the
// session's bank for the result, even when no level has rows. Draws and
// history are kept.
func (s *SessionService) ReloadBank(ctx context.Context, id string) (Result, error) {
	bank, report, err := s.rebuild(ctx)
	if err != nil {
		return Result{}, err
	}

	res, err := s.Apply(ctx, id, practicesession.Command{Kind: practicesession.CmdReplaceBank, Bank: bank})
	if err != nil {
		return Result{}, err
	}
	res.Outcome.Warnings = append(report.Warnings, res.Outcome.Warnings...)
	return res, nil
}

func (s *SessionService) load(ctx context.Context, sessionID string) (*practicesession.Session, error) {
	if !id.Valid(sessionID) {
		return nil, fmt.Errorf("load session %q: %w", sessionID, store.ErrNotFound)
	}
	snap, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return practicesession.Restore(snap), nil
}

func (s *SessionService) loadBank() ([]questionbank.Record, []string) {
	bank, err := bankfile.Load(s.paths.AliasFile)
	if err != nil {
		s.logger.Warn("question bank unreadable, starting empty", "path", s.paths.AliasFile, "error", err)
		return []questionbank.Record{}, []string{fmt.Sprintf("question bank unreadable: %v", err)}
	}
	return bank, nil
}
