package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVSink appends rows to a delimited-text file. The header is written
// only when the file is new or empty; appended rows never rewrite
// earlier content.
type CSVSink struct {
	Path    string
	Columns []string

	// DedupColumn optionally names the column used to skip rows whose
	// key already exists in the destination. Empty disables it.
	DedupColumn string
}

// Append writes rows to the destination, creating parent directories
// and the header as needed.
func (s *CSVSink) Append(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	keep, writeHeader, err := s.filter(rows)
	if err != nil {
		return err
	}
	if len(keep) == 0 {
		return nil
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(s.Columns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, row := range keep {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush destination: %w", err)
	}
	return nil
}

// filter decides whether a header is due and, when de-duplication is
// configured, drops rows whose key is already persisted.
func (s *CSVSink) filter(rows []Row) ([]Row, bool, error) {
	info, err := os.Stat(s.Path)
	fresh := os.IsNotExist(err) || (err == nil && info.Size() == 0)
	if err != nil && !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("stat destination: %w", err)
	}

	idx := dedupIndex(s.Columns, s.DedupColumn)
	if idx < 0 || fresh {
		return rows, fresh, nil
	}

	existing, err := s.existingKeys(idx)
	if err != nil {
		return nil, false, err
	}

	keep := make([]Row, 0, len(rows))
	for _, row := range rows {
		if idx < len(row) && existing[row[idx]] {
			continue
		}
		keep = append(keep, row)
	}
	return keep, false, nil
}

func (s *CSVSink) existingKeys(idx int) (map[string]bool, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open destination for dedup scan: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("scan destination: %w", err)
	}

	keys := make(map[string]bool, len(records))
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if idx < len(record) {
			keys[record[idx]] = true
		}
	}
	return keys, nil
}
