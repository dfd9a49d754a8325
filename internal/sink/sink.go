// Package sink persists decoded records into durable tabular stores.
// Rows are appended in arrival order; the ordering of the input items
// is never disturbed. Without a de-duplication column configured,
// re-running a pipeline against the same destination duplicates
// previously written rows. That is a documented limitation of the
// append contract, not a bug.
package sink

import (
	"path/filepath"
	"strings"
)

// Row is one record flattened to cells in column order.
type Row []string

// Sink persists rows of one record shape.
type Sink interface {
	Append(rows []Row) error
}

// PartialPath derives the distinguished destination used when a run is
// interrupted: "report.xlsx" becomes "report_partial.xlsx".
func PartialPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_partial" + ext
}

// dedupIndex resolves a de-duplication column name to its position in
// columns, or -1 when disabled or unknown.
func dedupIndex(columns []string, dedupColumn string) int {
	if dedupColumn == "" {
		return -1
	}
	for i, name := range columns {
		if name == dedupColumn {
			return i
		}
	}
	return -1
}
