package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wordboard/backend/internal/bankfile"
	"github.com/wordboard/backend/internal/domain/category"
	"github.com/wordboard/backend/internal/domain/level"
	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
	"github.com/wordboard/backend/internal/media"
	"github.com/wordboard/backend/internal/service"
	"github.com/wordboard/backend/internal/store"
)

// firstPick always takes the first candidate and never reorders.
type firstPick struct{}

func (firstPick) Intn(int) int                { return 0 }
func (firstPick) Shuffle(int, func(i, j int)) {}

type fixture struct {
	svc   *service.SessionService
	dir   string
	paths service.Paths
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	st, err := store.NewSQLite(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	paths := service.Paths{
		AllFile:   filepath.Join(dir, "questions_all.csv"),
		AliasFile: filepath.Join(dir, "questions.csv"),
	}
	levels := bankfile.NewAggregator(filepath.Join(dir, "levels"), 2)
	resolver := media.NewResolver(filepath.Join(dir, "media"), "/media")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := service.NewSessionService(st, levels, paths, resolver, logger).
		WithRandom(firstPick{}).
		WithClock(func() time.Time { return clock })

	return &fixture{svc: svc, dir: dir, paths: paths}
}

func (f *fixture) upload(t *testing.T, lvl int, content string) {
	t.Helper()
	if _, err := f.svc.UploadLevel(context.Background(), level.Level(lvl), strings.NewReader(content)); err != nil {
		t.Fatalf("upload level %d: %v", lvl, err)
	}
}

const level1 = "id,type,question,answer,options,difficulty,tags\n" +
	"r1,red,红色?,A,A||B,1,colors\n" +
	"g1,green,绿色?,B,A||B,1,colors\n"

const level2 = "id,type,question,answer,options,difficulty,tags,image_url\n" +
	"r2,Red,Say red,hong,,2,speaking,img/missing.png\n"

func mustApply(t *testing.T, f *fixture, id string, cmd practicesession.Command) service.Result {
	t.Helper()
	res, err := f.svc.Apply(context.Background(), id, cmd)
	if err != nil {
		t.Fatalf("apply %s: %v", cmd.Kind, err)
	}
	return res
}

func TestCreate_MissingBankStartsEmpty(t *testing.T) {
	f := newFixture(t)

	v, warnings, err := f.svc.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.BankSize != 0 || v.Stats.Total != 0 || len(warnings) != 0 {
		t.Errorf("expected empty session without warnings, got %+v %v", v, warnings)
	}
	if v.Filter.Type != category.All {
		t.Errorf("expected default type filter, got %q", v.Filter.Type)
	}
}

func TestCreate_UnreadableBankIsWarning(t *testing.T) {
	f := newFixture(t)
	if err := os.MkdirAll(f.paths.AliasFile, 0o755); err != nil {
		t.Fatal(err)
	}

	v, warnings, err := f.svc.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.BankSize != 0 || len(warnings) != 1 {
		t.Errorf("expected empty bank and one warning, got %d %v", v.BankSize, warnings)
	}
}

func TestSessionFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.upload(t, 2, level2)
	f.upload(t, 1, level1)

	report, err := f.svc.RebuildBank(ctx)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if report.Rows != 3 || !report.Written {
		t.Fatalf("unexpected report %+v", report)
	}

	v, _, err := f.svc.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.BankSize != 3 {
		t.Fatalf("expected 3 questions, got %d", v.BankSize)
	}

	red := practicesession.Filter{Type: " RED "}
	res := mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdSetFilter, Filter: &red})
	if res.Session.Filter.Type != category.Red || res.Session.Stats.Total != 2 {
		t.Errorf("expected red filter over 2 questions, got %+v", res.Session)
	}

	res = mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdDraw})
	if res.Outcome.Drawn == nil || res.Outcome.Drawn.ID != "r1" {
		t.Fatalf("expected r1, got %+v", res.Outcome)
	}
	if res.Session.Current == nil || len(res.Session.Current.Options) != 2 {
		t.Errorf("expected current question with options, got %+v", res.Session.Current)
	}

	res = mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdSubmit, Answer: " A "})
	if res.Outcome.Attempt == nil || res.Outcome.Attempt.Correct == nil || !*res.Outcome.Attempt.Correct {
		t.Errorf("expected correct attempt, got %+v", res.Outcome.Attempt)
	}

	res = mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdDraw})
	if res.Outcome.Drawn == nil || res.Outcome.Drawn.ID != "r2" {
		t.Fatalf("expected r2, got %+v", res.Outcome)
	}
	if res.Session.Current.Image != nil || len(res.Outcome.Warnings) != 1 {
		t.Errorf("expected missing image as a warning, got %+v %v", res.Session.Current.Image, res.Outcome.Warnings)
	}

	res = mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdSubmit, Answer: "hong"})
	if res.Outcome.Attempt.Correct != nil {
		t.Errorf("expected free text to stay ungraded, got %v", *res.Outcome.Attempt.Correct)
	}

	res = mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdDraw})
	if !res.Outcome.Exhausted || res.Outcome.Warnings[0] != practicesession.WarnExhausted {
		t.Errorf("expected exhausted pool, got %+v", res.Outcome)
	}
	if res.Session.Current == nil || res.Session.Current.ID != "r2" {
		t.Errorf("expected exhausted draw to keep the current question, got %+v", res.Session.Current)
	}

	entries, summary, err := f.svc.History(ctx, v.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 || summary.Total != 2 || summary.CorrectCount != 1 || summary.Accuracy != "50.0%" {
		t.Errorf("unexpected history %+v %+v", entries, summary)
	}

	var buf bytes.Buffer
	if err := f.svc.ExportHistory(ctx, v.ID, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\ufeff")), "\n")
	if len(lines) != 3 || !strings.HasSuffix(lines[1], ",True") || !strings.HasSuffix(lines[2], ",") {
		t.Errorf("unexpected export %q", buf.String())
	}

	res = mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdReset})
	if res.Session.Stats.Seen != 0 || res.Session.Current != nil || res.Session.Summary.Total != 2 {
		t.Errorf("expected reset to clear draws and keep history, got %+v", res.Session)
	}
}

func TestExportHistory_KeepsLoggedLocalTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cst := time.FixedZone("CST", 8*60*60)
	f.svc.WithClock(func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, cst) })

	f.upload(t, 1, level1)
	if _, err := f.svc.RebuildBank(ctx); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	v, _, err := f.svc.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdDraw})
	mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdSubmit, Answer: "A"})

	var buf bytes.Buffer
	if err := f.svc.ExportHistory(ctx, v.ID, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\ufeff")), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	if want := "2026-03-01 09:00:00,r1,red,"; !strings.HasPrefix(lines[1], want) {
		t.Errorf("expected row to start with %q, got %q", want, lines[1])
	}
}

func TestApply_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.svc.Apply(ctx, "missing", practicesession.Command{Kind: practicesession.CmdDraw}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	v, _, err := f.svc.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.svc.Apply(ctx, v.ID, practicesession.Command{Kind: practicesession.CmdSubmit, Answer: "x"}); !errors.Is(err, practicesession.ErrNoCurrentQuestion) {
		t.Errorf("expected ErrNoCurrentQuestion, got %v", err)
	}
	if _, err := f.svc.Apply(ctx, v.ID, practicesession.Command{Kind: practicesession.CmdReveal}); !errors.Is(err, practicesession.ErrNoCurrentQuestion) {
		t.Errorf("expected ErrNoCurrentQuestion on reveal, got %v", err)
	}

	if err := f.svc.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := f.svc.Get(ctx, v.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestReloadBank(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.upload(t, 1, level1)
	if _, err := f.svc.RebuildBank(ctx); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	v, _, err := f.svc.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mustApply(t, f, v.ID, practicesession.Command{Kind: practicesession.CmdDraw})

	f.upload(t, 2, level2)
	if err := os.MkdirAll(filepath.Join(f.dir, "levels", "questions_level_3.csv"), 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := f.svc.ReloadBank(ctx, v.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.Session.BankSize != 3 {
		t.Errorf("expected 3 questions after reload, got %d", res.Session.BankSize)
	}
	if res.Session.Stats.Seen != 1 {
		t.Errorf("expected draws kept across reload, got %+v", res.Session.Stats)
	}
	if len(res.Outcome.Warnings) == 0 || !strings.Contains(res.Outcome.Warnings[0], "level 3") {
		t.Errorf("expected level 3 warning, got %v", res.Outcome.Warnings)
	}

	levels := f.svc.Levels()
	if !levels[0].Present || !levels[1].Present || levels[9].Present {
		t.Errorf("unexpected level listing %+v", levels)
	}
}

func TestReloadBank_NoLevelRowsEmptiesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.upload(t, 1, level1)
	if _, err := f.svc.RebuildBank(ctx); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	v, _, err := f.svc.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.BankSize != 2 {
		t.Fatalf("expected 2 questions, got %d", v.BankSize)
	}

	if err := os.Remove(filepath.Join(f.dir, "levels", "questions_level_1.csv")); err != nil {
		t.Fatal(err)
	}

	res, err := f.svc.ReloadBank(ctx, v.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.Session.BankSize != 0 || res.Session.Stats.Total != 0 {
		t.Errorf("expected empty bank after reload, got %+v", res.Session)
	}
	if _, err := os.Stat(f.paths.AliasFile); err != nil {
		t.Errorf("expected previous alias file kept on disk, got %v", err)
	}
}
