package questionbank

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wordboard/backend/internal/domain/category"
	"github.com/wordboard/backend/internal/domain/level"
)

// Canonical bank columns, in file order.
const (
	ColID         = "id"
	ColType       = "type"
	ColQuestion   = "question"
	ColAnswer     = "answer"
	ColOptions    = "options"
	ColAudioURL   = "audio_url"
	ColImageURL   = "image_url"
	ColPassage    = "passage"
	ColDifficulty = "difficulty"
	ColTags       = "tags"
)

// Columns lists the ten canonical columns every record carries.
var Columns = []string{
	ColID, ColType, ColQuestion, ColAnswer, ColOptions,
	ColAudioURL, ColImageURL, ColPassage, ColDifficulty, ColTags,
}

// OptionSeparator joins multiple-choice options inside the options column.
const OptionSeparator = "||"

// DefaultDifficulty is used when the difficulty column is missing or unparsable.
const DefaultDifficulty = int(level.Min)

// Row is one loosely-typed input row keyed by column name. Columns may be
// missing and cells may be nil or non-string values.
type Row map[string]any

// Record is a normalized question.
type Record struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	Options       []string `json:"options"`
	AudioURL      string   `json:"audio_url"`
	ImageURL      string   `json:"image_url"`
	Passage       string   `json:"passage"`
	Difficulty    string   `json:"difficulty"`
	DifficultyNum int      `json:"difficulty_num"`
	Tags          string   `json:"tags"`
}

// IsMultipleChoice reports whether the record has options to choose from.
// Records without options are free-text and never auto-graded.
func (r Record) IsMultipleChoice() bool {
	return len(r.Options) > 0
}

// Row converts the record back to its canonical column form.
func (r Record) Row() Row {
	return Row{
		ColID:         r.ID,
		ColType:       r.Type,
		ColQuestion:   r.Question,
		ColAnswer:     r.Answer,
		ColOptions:    strings.Join(r.Options, OptionSeparator),
		ColAudioURL:   r.AudioURL,
		ColImageURL:   r.ImageURL,
		ColPassage:    r.Passage,
		ColDifficulty: r.Difficulty,
		ColTags:       r.Tags,
	}
}

// Normalize turns raw rows into records. It never drops a row: missing
// columns and nil cells become empty strings and the difficulty falls back
// to DefaultDifficulty.
func Normalize(rows []Row) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, NormalizeRow(row))
	}
	return records
}

// NormalizeRow normalizes a single row.
func NormalizeRow(row Row) Record {
	difficulty := row.String(ColDifficulty)
	return Record{
		ID:            row.String(ColID),
		Type:          string(category.Normalize(row.String(ColType))),
		Question:      row.String(ColQuestion),
		Answer:        row.String(ColAnswer),
		Options:       ParseOptions(row.String(ColOptions)),
		AudioURL:      row.String(ColAudioURL),
		ImageURL:      row.String(ColImageURL),
		Passage:       row.String(ColPassage),
		Difficulty:    difficulty,
		DifficultyNum: ParseDifficulty(difficulty),
		Tags:          row.String(ColTags),
	}
}

// String returns the cell for col as a string; absent and nil cells are "".
func (r Row) String(col string) string {
	return cellString(r[col])
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ""
		}
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return cellString(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// ParseOptions splits an options cell on OptionSeparator. Pieces are
// trimmed and empty pieces are dropped.
func ParseOptions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, OptionSeparator)
	opts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			opts = append(opts, p)
		}
	}
	return opts
}

// ParseDifficulty coerces a raw difficulty into [1,10], defaulting to 1.
func ParseDifficulty(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		v = DefaultDifficulty
	}
	return int(level.Clamp(v))
}
