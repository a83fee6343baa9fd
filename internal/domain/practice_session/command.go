package practicesession

import (
	"errors"
	"fmt"
	"time"

	"github.com/wordboard/backend/internal/domain/history"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/grader"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidCommand = errors.New("invalid command")
)

// WarnExhausted is returned when a draw finds nothing left in the pool.
const WarnExhausted = "no questions left to draw: reset the draws or broaden the filters"

type CommandKind string

const (
	CmdSetFilter      CommandKind = "set_filter"
	CmdSetPreferences CommandKind = "set_preferences"
	CmdDraw           CommandKind = "draw"
	CmdSubmit         CommandKind = "submit"
	CmdReveal         CommandKind = "reveal"
	CmdReset          CommandKind = "reset"
	CmdClearHistory   CommandKind = "clear_history"
	CmdReplaceBank    CommandKind = "replace_bank"
)

// Command is one user interaction. Only the payload field matching Kind is read.
type Command struct {
	Kind   CommandKind           `json:"kind"`
	Filter *Filter               `json:"filter,omitempty"`
	Prefs  *Preferences          `json:"preferences,omitempty"`
	Answer string                `json:"answer,omitempty"`
	Bank   []questionbank.Record `json:"bank,omitempty"`
}

// Env carries the collaborators a command may need.
type Env struct {
	Rand   Randomizer
	Grader grader.Grader
	Now    func() time.Time
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Outcome reports what a command did.
type Outcome struct {
	Drawn     *questionbank.Record `json:"drawn,omitempty"`
	Exhausted bool                 `json:"exhausted,omitempty"`
	Attempt   *history.Attempt     `json:"attempt,omitempty"`
	Answer    *string              `json:"answer,omitempty"`
	Warnings  []string             `json:"warnings,omitempty"`
}

// Apply runs cmd against the session. A command either applies fully or,
// when it returns an error, leaves the session untouched.
func (s *Session) Apply(cmd Command, env Env) (Outcome, error) {
	var out Outcome

	switch cmd.Kind {
	case CmdSetFilter:
		if cmd.Filter == nil {
			return out, fmt.Errorf("%w: %s without filter", ErrInvalidCommand, cmd.Kind)
		}
		s.SetFilter(*cmd.Filter)

	case CmdSetPreferences:
		if cmd.Prefs == nil {
			return out, fmt.Errorf("%w: %s without preferences", ErrInvalidCommand, cmd.Kind)
		}
		s.SetPreferences(*cmd.Prefs)

	case CmdDraw:
		rec, ok := s.Draw(env.Rand)
		if !ok {
			out.Exhausted = true
			out.Warnings = append(out.Warnings, WarnExhausted)
			return out, nil
		}
		out.Drawn = &rec

	case CmdSubmit:
		attempt, err := s.Submit(cmd.Answer, env.Grader, env.now())
		if err != nil {
			return out, err
		}
		out.Attempt = &attempt

	case CmdReveal:
		answer, err := s.Reveal()
		if err != nil {
			return out, err
		}
		out.Answer = &answer
		return out, nil

	case CmdReset:
		s.Reset()

	case CmdClearHistory:
		s.ClearHistory()

	case CmdReplaceBank:
		s.ReplaceBank(cmd.Bank)

	default:
		return out, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}

	s.UpdatedAt = env.now()
	return out, nil
}
