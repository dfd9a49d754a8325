package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return records
}

func TestCSVSink_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := &CSVSink{Path: path, Columns: []string{"Incident ID", "Area", "Score"}}

	if err := s.Append([]Row{{"INC-001", "Gampaha", "8"}}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := s.Append([]Row{{"INC-002", "Colombo", "5"}}); err != nil {
		t.Fatalf("second append: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header plus two data rows", len(records))
	}
	if records[0][0] != "Incident ID" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "INC-001" || records[2][0] != "INC-002" {
		t.Errorf("row order disturbed: %v", records[1:])
	}
}

func TestCSVSink_AppendPreservesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := &CSVSink{Path: path, Columns: []string{"A", "B"}}

	_ = s.Append([]Row{{"1", "one"}})
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	_ = s.Append([]Row{{"2", "two"}})
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(after[:len(before)]) != string(before) {
		t.Error("append rewrote earlier content")
	}
}

func TestCSVSink_Dedup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := &CSVSink{Path: path, Columns: []string{"Incident ID", "Area", "Score"}, DedupColumn: "Incident ID"}

	_ = s.Append([]Row{{"INC-001", "Gampaha", "8"}})
	_ = s.Append([]Row{{"INC-001", "Gampaha", "8"}, {"INC-002", "Colombo", "5"}})

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("rows = %d, want duplicate key dropped", len(records))
	}
	if records[2][0] != "INC-002" {
		t.Errorf("surviving row = %v", records[2])
	}
}

func TestCSVSink_UnknownDedupColumnDisables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := &CSVSink{Path: path, Columns: []string{"A"}, DedupColumn: "Nope"}

	_ = s.Append([]Row{{"x"}})
	_ = s.Append([]Row{{"x"}})

	if records := readCSV(t, path); len(records) != 3 {
		t.Errorf("rows = %d, want no dedup for unknown column", len(records))
	}
}

func TestCSVSink_EmptyAppendNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := &CSVSink{Path: path, Columns: []string{"A"}}

	if err := s.Append(nil); err != nil {
		t.Fatalf("empty append: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty append should not create the destination")
	}
}

func TestCSVSink_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")
	s := &CSVSink{Path: path, Columns: []string{"A"}}

	if err := s.Append([]Row{{"x"}}); err != nil {
		t.Fatalf("append into missing directory: %v", err)
	}
}

func TestPartialPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flood_report.xlsx", "flood_report_partial.xlsx"},
		{"scores.csv", "scores_partial.csv"},
		{"out/report.xlsx", "out/report_partial.xlsx"},
		{"noext", "noext_partial"},
	}
	for _, tt := range tests {
		if got := PartialPath(tt.in); got != tt.want {
			t.Errorf("PartialPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
