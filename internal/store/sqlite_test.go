package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/store"
)

// firstPick always takes the first candidate and never reorders.
type firstPick struct{}

func (firstPick) Intn(int) int                { return 0 }
func (firstPick) Shuffle(int, func(i, j int)) {}

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSession(t *testing.T) *practicesession.Session {
	t.Helper()
	bank := questionbank.Normalize([]questionbank.Row{
		{"id": "q1", "type": "red", "question": "A or B?", "answer": "A", "options": "A||B", "difficulty": "2"},
		{"id": "q2", "type": "blue", "question": "Say hello", "answer": "你好"},
	})
	s := practicesession.New(bank)
	s.ID = "s-1"
	s.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.UpdatedAt = s.CreatedAt
	return s
}

func TestSaveAndGetSession(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	sess := sampleSession(t)

	now := time.Date(2024, 5, 1, 10, 5, 0, 0, time.FixedZone("CST", 8*60*60))
	if rec, ok := sess.Draw(firstPick{}); !ok || rec.ID != "q1" {
		t.Fatalf("expected q1 drawn, got %+v", rec)
	}
	if _, err := sess.Submit(" A ", nil, now); err != nil {
		t.Fatalf("submit: %v", err)
	}
	sess.Prefs.ShuffleOptions = false

	if err := st.SaveSession(ctx, sess.Snapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.GetSession(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := sess.Snapshot()

	if !reflect.DeepEqual(got.Bank, want.Bank) {
		t.Errorf("bank mismatch: %+v", got.Bank)
	}
	if !reflect.DeepEqual(got.Seen, want.Seen) {
		t.Errorf("expected seen %v, got %v", want.Seen, got.Seen)
	}
	if got.Current == nil || got.Current.ID != "q1" {
		t.Errorf("expected current q1, got %+v", got.Current)
	}
	if !reflect.DeepEqual(got.OptionOrder, want.OptionOrder) {
		t.Errorf("expected option order %v, got %v", want.OptionOrder, got.OptionOrder)
	}
	if got.Prefs != want.Prefs {
		t.Errorf("expected prefs %+v, got %+v", want.Prefs, got.Prefs)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("expected created %v, got %v", want.CreatedAt, got.CreatedAt)
	}

	if len(got.History) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got.History))
	}
	a := got.History[0]
	if a.QuestionID != "q1" || a.UserAnswer != "A" || a.Correct == nil || !*a.Correct {
		t.Errorf("unexpected attempt %+v", a)
	}
	if !a.Time.Equal(now) {
		t.Errorf("expected attempt time %v, got %v", now, a.Time)
	}
	if _, offset := a.Time.Zone(); offset != 8*60*60 {
		t.Errorf("expected attempt to keep its +08:00 offset, got %v", a.Time)
	}
}

func TestSaveSession_Overwrites(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	sess := sampleSession(t)

	if err := st.SaveSession(ctx, sess.Snapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	sess.Draw(firstPick{})
	if rec, ok := sess.Draw(firstPick{}); !ok || rec.ID != "q2" {
		t.Fatalf("expected q2 drawn, got %+v", rec)
	}
	if _, err := sess.Submit("hello", nil, time.Now()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := st.SaveSession(ctx, sess.Snapshot()); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := st.GetSession(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.History) != 1 || got.History[0].Correct != nil {
		t.Errorf("expected one ungraded attempt, got %+v", got.History)
	}

	sess.ClearHistory()
	if err := st.SaveSession(ctx, sess.Snapshot()); err != nil {
		t.Fatalf("save cleared: %v", err)
	}
	got, _ = st.GetSession(ctx, "s-1")
	if len(got.History) != 0 {
		t.Errorf("expected cleared history, got %d attempts", len(got.History))
	}
}

func TestGetSession_NotFound(t *testing.T) {
	st := newStore(t)

	_, err := st.GetSession(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	if err := st.SaveSession(ctx, sampleSession(t).Snapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.DeleteSession(ctx, "s-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.GetSession(ctx, "s-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.DeleteSession(ctx, "s-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
