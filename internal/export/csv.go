package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"claimguard/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first so Excel on Windows renders
// the rupee sign correctly.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// csvColumns defines the CSV header row for the scenario breakdown.
var csvColumns = []string{
	"ID",
	"Scenario",
	"Status",
	"Payout",
	"Reason",
	"Clause",
	"Out of Pocket",
}

// CSVWriter wraps csv.Writer for exporting a report card as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(csvColumns)
}

// WriteScenarios converts scenario outcomes to CSV rows and writes them.
func (w *CSVWriter) WriteScenarios(scenarios []domain.ScenarioOutcome) error {
	for _, sc := range scenarios {
		row := []string{
			strconv.Itoa(sc.ID),
			sc.Name,
			string(sc.Status),
			sc.Payout,
			sc.Reason,
			sc.Clause,
			sc.OutOfPocket,
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}
