package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/talentsift/screener/core"
)

// DefaultCSVName is the conventional export filename.
const DefaultCSVName = "shortlisted_candidates.csv"

var csvHeader = []string{"name", "score", "shortlisted", "matched_keywords"}

// WriteCSV writes records as UTF-8 CSV with a header row and no index
// column. Scores keep their two-decimal precision; matched keywords are
// comma-joined inside a single quoted field.
func WriteCSV(w io.Writer, records []*core.ScoreRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Document.Name,
			strconv.FormatFloat(r.Score, 'f', 2, 64),
			strconv.FormatBool(r.Shortlisted),
			strings.Join(r.KeywordOverlap, ","),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes records to a file at path, creating or truncating it.
func SaveCSV(path string, records []*core.ScoreRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
