package practicesession_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/grader"
)

func testEnv() practicesession.Env {
	fixed := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	return practicesession.Env{
		Rand:   stubRand{},
		Grader: grader.ExactMatch{},
		Now:    func() time.Time { return fixed },
	}
}

func TestApply_SetFilterNormalizes(t *testing.T) {
	session := practicesession.New(createBank("red"))

	_, err := session.Apply(practicesession.Command{
		Kind:   practicesession.CmdSetFilter,
		Filter: &practicesession.Filter{Type: " RED ", Difficulty: []string{"all", "7", "3", "99"}, TagQuery: "hsk"},
	}, testEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := practicesession.Filter{Type: "red", Difficulty: []string{"3", "7"}, TagQuery: "hsk"}
	if !reflect.DeepEqual(session.Filter, want) {
		t.Errorf("expected %+v, got %+v", want, session.Filter)
	}
	if !session.UpdatedAt.Equal(testEnv().Now()) {
		t.Errorf("expected UpdatedAt to be bumped, got %v", session.UpdatedAt)
	}
}

func TestApply_EmptyTypeMeansAll(t *testing.T) {
	session := practicesession.New(createBank("red"))

	session.Apply(practicesession.Command{
		Kind:   practicesession.CmdSetFilter,
		Filter: &practicesession.Filter{},
	}, testEnv())

	if session.Filter.Type != "all" || !reflect.DeepEqual(session.Filter.Difficulty, []string{"all"}) {
		t.Errorf("expected empty filter to normalize to all, got %+v", session.Filter)
	}
}

func TestApply_MissingPayload(t *testing.T) {
	session := practicesession.New(createBank("red"))
	before := session.Filter

	if _, err := session.Apply(practicesession.Command{Kind: practicesession.CmdSetFilter}, testEnv()); !errors.Is(err, practicesession.ErrInvalidCommand) {
		t.Errorf("expected ErrInvalidCommand for missing filter, got %v", err)
	}
	if _, err := session.Apply(practicesession.Command{Kind: practicesession.CmdSetPreferences}, testEnv()); !errors.Is(err, practicesession.ErrInvalidCommand) {
		t.Errorf("expected ErrInvalidCommand for missing preferences, got %v", err)
	}
	if !reflect.DeepEqual(session.Filter, before) {
		t.Error("expected failed command to leave state untouched")
	}
}

func TestApply_UnknownCommand(t *testing.T) {
	session := practicesession.New(nil)

	_, err := session.Apply(practicesession.Command{Kind: "explode"}, testEnv())
	if !errors.Is(err, practicesession.ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestApply_DrawSubmitFlow(t *testing.T) {
	session := practicesession.New(createBank("red"))
	env := testEnv()

	out, err := session.Apply(practicesession.Command{Kind: practicesession.CmdDraw}, env)
	if err != nil || out.Drawn == nil || out.Drawn.ID != "q1" {
		t.Fatalf("expected q1 drawn, got %+v (%v)", out, err)
	}

	out, err = session.Apply(practicesession.Command{Kind: practicesession.CmdDraw}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Exhausted || len(out.Warnings) != 1 || out.Drawn != nil {
		t.Errorf("expected exhausted outcome with a warning, got %+v", out)
	}

	out, err = session.Apply(practicesession.Command{Kind: practicesession.CmdSubmit, Answer: "A"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Attempt == nil || out.Attempt.Correct == nil || *out.Attempt.Correct {
		t.Errorf("expected incorrect attempt, got %+v", out.Attempt)
	}

	out, err = session.Apply(practicesession.Command{Kind: practicesession.CmdReveal}, env)
	if err != nil || out.Answer == nil || *out.Answer != "B" {
		t.Errorf("expected reveal B, got %+v (%v)", out, err)
	}

	if _, err := session.Apply(practicesession.Command{Kind: practicesession.CmdReset}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out, _ := session.Apply(practicesession.Command{Kind: practicesession.CmdDraw}, env); out.Drawn == nil {
		t.Error("expected draw to work again after reset")
	}

	if _, err := session.Apply(practicesession.Command{Kind: practicesession.CmdClearHistory}, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.History.Len() != 0 {
		t.Errorf("expected history cleared, got %d", session.History.Len())
	}
}

func TestApply_SubmitEmptyAnswerRejected(t *testing.T) {
	session := practicesession.New(createBank("red"))
	env := testEnv()
	session.Apply(practicesession.Command{Kind: practicesession.CmdDraw}, env)

	_, err := session.Apply(practicesession.Command{Kind: practicesession.CmdSubmit, Answer: ""}, env)
	if !errors.Is(err, practicesession.ErrEmptyAnswer) {
		t.Errorf("expected ErrEmptyAnswer, got %v", err)
	}
	if session.History.Len() != 0 {
		t.Error("expected nothing appended")
	}
}

func TestApply_ReplaceBank(t *testing.T) {
	session := practicesession.New(createBank("red"))
	fresh := questionbank.Normalize([]questionbank.Row{{"id": "n1"}, {"id": "n2"}})

	if _, err := session.Apply(practicesession.Command{Kind: practicesession.CmdReplaceBank, Bank: fresh}, testEnv()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.Bank) != 2 || session.Bank[0].ID != "n1" {
		t.Errorf("expected replaced bank, got %+v", session.Bank)
	}
}

func TestSnapshotRestore(t *testing.T) {
	session := practicesession.New(createBank("red", "green"))
	env := testEnv()
	session.Apply(practicesession.Command{Kind: practicesession.CmdDraw}, env)
	session.Apply(practicesession.Command{Kind: practicesession.CmdSubmit, Answer: "B"}, env)

	restored := practicesession.Restore(session.Snapshot())

	if restored.ID != session.ID {
		t.Errorf("expected id %s, got %s", session.ID, restored.ID)
	}
	if !reflect.DeepEqual(restored.SeenIDs(), session.SeenIDs()) {
		t.Errorf("expected seen %v, got %v", session.SeenIDs(), restored.SeenIDs())
	}
	if restored.Current == nil || restored.Current.ID != session.Current.ID {
		t.Errorf("expected current %s, got %+v", session.Current.ID, restored.Current)
	}
	if !reflect.DeepEqual(restored.CurrentOptions(nil), session.CurrentOptions(nil)) {
		t.Error("expected option order to survive a snapshot")
	}
	if restored.History.Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", restored.History.Len())
	}
	if !reflect.DeepEqual(restored.Filter, session.Filter) || restored.Prefs != session.Prefs {
		t.Error("expected filter and preferences to survive a snapshot")
	}
}
