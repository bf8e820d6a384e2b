// Package export renders the full tracking history to tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bneiser/timetrack/internal/model"
	"github.com/bneiser/timetrack/internal/timeparse"
)

var header = []string{"Date", "Start", "End", "Activity", "Duration", "Notes"}

// Row is one rendered export line.
type Row struct {
	Date     string
	Start    string
	End      string
	Activity string
	Duration string
	Notes    string
}

// Rows flattens the history into export rows, days in ascending order
// and entries in storage order within each day.
func Rows(days map[string][]model.TimeEntry) []Row {
	keys := make([]string, 0, len(days))
	for day := range days {
		keys = append(keys, day)
	}
	sort.Strings(keys)

	var rows []Row
	for _, day := range keys {
		for _, e := range days[day] {
			rows = append(rows, Row{
				Date:     day,
				Start:    timeparse.FormatClock(e.Start),
				End:      timeparse.FormatClock(e.End),
				Activity: e.Activity,
				Duration: timeparse.FormatMinutes(e.Duration()),
				Notes:    strings.Join(e.Notes, "\n"),
			})
		}
	}
	return rows
}

// WriteCSV renders the history as CSV.
func WriteCSV(w io.Writer, days map[string][]model.TimeEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range Rows(days) {
		record := []string{r.Date, r.Start, r.End, r.Activity, r.Duration, r.Notes}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX renders the history as an XLSX workbook at path.
func WriteXLSX(path string, days map[string][]model.TimeEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for i, r := range Rows(days) {
		values := []string{r.Date, r.Start, r.End, r.Activity, r.Duration, r.Notes}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

// FilePath builds the timestamped export path inside dir, creating the
// directory if needed.
func FilePath(dir, format string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	name := fmt.Sprintf("timetrack_export_%s.%s", now.Format("20060102_150405"), format)
	return filepath.Join(dir, name), nil
}
