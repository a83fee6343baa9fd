package bankfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wordboard/backend/internal/domain/level"
	"github.com/wordboard/backend/internal/domain/questionbank"
	"github.com/wordboard/backend/internal/worker"
)

var ErrInvalidLevel = errors.New("invalid level")

// LevelError reports a level file that could not be read or parsed.
// Aggregation skips such files and keeps going.
type LevelError struct {
	Level level.Level
	Path  string
	Err   error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("level %d (%s): %v", e.Level, e.Path, e.Err)
}

func (e *LevelError) Unwrap() error {
	return e.Err
}

// LevelInfo describes one per-level file on disk.
type LevelInfo struct {
	Level   level.Level `json:"level"`
	Path    string      `json:"path"`
	Present bool        `json:"present"`
	Rows    int         `json:"rows"`
	Error   string      `json:"error,omitempty"`
}

// Aggregator combines the per-level files of a directory into one bank.
type Aggregator struct {
	dir     string
	workers int
}

func NewAggregator(dir string, workers int) *Aggregator {
	return &Aggregator{dir: dir, workers: workers}
}

// LevelPath is where the file for l lives.
func (a *Aggregator) LevelPath(l level.Level) string {
	return filepath.Join(a.dir, l.FileName())
}

type levelRead struct {
	level   level.Level
	rows    []questionbank.Row
	missing bool
	err     error
}

func (a *Aggregator) readAll() []levelRead {
	levels := level.All()
	pool := worker.NewPool[levelRead](a.workers, len(levels))
	for _, l := range levels {
		pool.Submit(l.String(), func() levelRead { return a.readLevel(l) })
	}
	pool.Close()

	byLevel := make(map[level.Level]levelRead, len(levels))
	for res := range pool.Results() {
		byLevel[res.Output.level] = res.Output
	}

	reads := make([]levelRead, 0, len(levels))
	for _, l := range levels {
		reads = append(reads, byLevel[l])
	}
	return reads
}

func (a *Aggregator) readLevel(l level.Level) levelRead {
	path := a.LevelPath(l)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return levelRead{level: l, missing: true}
	}
	if err != nil {
		return levelRead{level: l, err: &LevelError{Level: l, Path: path, Err: err}}
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return levelRead{level: l, err: &LevelError{Level: l, Path: path, Err: err}}
	}
	return levelRead{level: l, rows: rows}
}

// Aggregate concatenates every present level file, level 1 first, keeping
// each file's row order, and normalizes the result. Missing files are
// skipped silently; unreadable ones are skipped and reported in warnings.
func (a *Aggregator) Aggregate() ([]questionbank.Record, []error) {
	var (
		rows     []questionbank.Row
		warnings []error
	)
	for _, read := range a.readAll() {
		if read.err != nil {
			warnings = append(warnings, read.err)
			continue
		}
		rows = append(rows, read.rows...)
	}
	return questionbank.Normalize(rows), warnings
}

// Rebuild aggregates the level files and, when the result is not empty,
// writes it to both the canonical aggregate file and its alias.
func (a *Aggregator) Rebuild(allPath, aliasPath string) ([]questionbank.Record, []error, error) {
	records, warnings := a.Aggregate()
	if len(records) == 0 {
		return records, warnings, nil
	}

	for _, path := range []string{allPath, aliasPath} {
		if err := WriteFile(path, records); err != nil {
			return records, warnings, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return records, warnings, nil
}

// StoreLevel replaces the file for l with the CSV read from r and returns
// its row count. Content that does not parse as CSV is rejected.
func (a *Aggregator) StoreLevel(l level.Level, r io.Reader) (int, error) {
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, l)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	rows, err := ReadRows(bytes.NewReader(data))
	if err != nil {
		return 0, &LevelError{Level: l, Path: a.LevelPath(l), Err: err}
	}

	if err := writeAtomic(a.LevelPath(l), data); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Levels reports presence and size of every level file.
func (a *Aggregator) Levels() []LevelInfo {
	reads := a.readAll()
	infos := make([]LevelInfo, len(reads))
	for i, read := range reads {
		info := LevelInfo{
			Level:   read.level,
			Path:    a.LevelPath(read.level),
			Present: !read.missing,
			Rows:    len(read.rows),
		}
		if read.err != nil {
			info.Error = read.err.Error()
		}
		infos[i] = info
	}
	return infos
}
