package history

import (
	"encoding/csv"
	"io"
)

// ExportColumns is the fixed header of a history export.
var ExportColumns = []string{"time", "id", "type", "question", "user_answer", "correct_answer", "correct"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes entries as UTF-8 CSV with a leading BOM so spreadsheet
// tools pick up the encoding.
func WriteCSV(w io.Writer, entries []Attempt) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return err
	}
	for _, a := range entries {
		if err := cw.Write(exportRow(a)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(a Attempt) []string {
	correct := ""
	if a.Graded() {
		correct = "False"
		if *a.Correct {
			correct = "True"
		}
	}
	return []string{
		a.Time.Format(TimeLayout),
		a.QuestionID,
		a.Type,
		a.Question,
		a.UserAnswer,
		a.CorrectAnswer,
		correct,
	}
}
