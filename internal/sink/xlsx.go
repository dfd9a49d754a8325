package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// XLSXSink persists rows into a spreadsheet. The format has no native
// append mode, so every Append reloads the whole sheet, concatenates
// the new rows, and rewrites the file. That is quadratic over many
// small appends but correct: the file is rewritten atomically per
// flush and prior row order is preserved.
type XLSXSink struct {
	Path    string
	Columns []string

	// DedupColumn optionally names the column used to skip rows whose
	// key already exists in the sheet. Empty disables it.
	DedupColumn string
}

const defaultSheet = "Sheet1"

// Append merges rows into the spreadsheet in arrival order.
func (s *XLSXSink) Append(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	existing, err := s.load()
	if err != nil {
		return err
	}

	combined := existing
	if idx := dedupIndex(s.Columns, s.DedupColumn); idx >= 0 {
		seen := make(map[string]bool, len(existing))
		for _, row := range existing {
			if idx < len(row) {
				seen[row[idx]] = true
			}
		}
		for _, row := range rows {
			if idx < len(row) && seen[row[idx]] {
				continue
			}
			combined = append(combined, row)
		}
	} else {
		combined = append(combined, rows...)
	}

	return s.write(combined)
}

// load returns the data rows already persisted, without the header.
func (s *XLSXSink) load() ([]Row, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	raw, err := f.GetRows(defaultSheet)
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet rows: %w", err)
	}

	rows := make([]Row, 0, len(raw))
	for i, cells := range raw {
		if i == 0 {
			continue // header
		}
		rows = append(rows, Row(cells))
	}
	return rows, nil
}

// write rewrites the full file: header plus all rows.
func (s *XLSXSink) write(rows []Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header := make([]any, len(s.Columns))
	for i, name := range s.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(defaultSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, value := range row {
			cells[j] = value
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(defaultSheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(s.Path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}
