package bankfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wordboard/backend/internal/domain/questionbank"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows parses a bank CSV. The first line is the header; cells are
// keyed by header name. Rows shorter than the header leave the trailing
// columns absent, longer rows drop the extra cells. An empty input is an
// empty bank.
func ReadRows(r io.Reader) ([]questionbank.Row, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []questionbank.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := []questionbank.Row{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}

		row := make(questionbank.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Load reads and normalizes the bank at path. A missing file is an empty
// bank, not an error.
func Load(path string) ([]questionbank.Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []questionbank.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return questionbank.Normalize(rows), nil
}

// Write writes records as UTF-8 CSV with a BOM and the canonical header.
func Write(w io.Writer, records []questionbank.Record) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(questionbank.Columns); err != nil {
		return err
	}
	line := make([]string, len(questionbank.Columns))
	for _, r := range records {
		row := r.Row()
		for i, col := range questionbank.Columns {
			line[i] = row.String(col)
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile replaces path with the CSV form of records. The file is
// written next to path first and renamed into place.
func WriteFile(path string, records []questionbank.Record) error {
	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
