// Package export writes session tables to UTF-8 CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyike/symplacheck/internal/models"
)

const (
	// EventsFilename is the export name for the fetched events table.
	EventsFilename = "fetched_events.csv"
	// SummaryFilename is the export name for the combined results summary.
	SummaryFilename = "event_results_summary.csv"
)

// ResultFilename names the export file for one fetch result, e.g.
// "12345_orders.csv".
func ResultFilename(result models.FetchResult) string {
	return fmt.Sprintf("%s_%s.csv", result.EventID, result.Type)
}

// Writer writes tables as CSV files under a base directory.
type Writer struct {
	dir string
}

// NewWriter creates a CSV writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteTable writes the table to filename under the export directory,
// header row first, and returns the full path.
func (w *Writer) WriteTable(filename string, table models.Table) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(w.dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Columns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush CSV: %w", err)
	}
	return path, nil
}
