package input

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Incident is one row of the tabular incident source.
type Incident struct {
	ID       string
	Area     string
	Time     string
	People   string
	Ages     string
	MainNeed string
	Message  string
}

// Placeholder substituted for values whose column is absent.
const Placeholder = "N/A"

// incidentColumns are the columns an incident source should carry.
var incidentColumns = []string{"ID", "Area", "Time", "People", "Ages", "Main Need", "Message"}

// ReadIncidents parses the incident CSV. Missing required columns
// degrade gracefully: a warning per absent column is returned and the
// corresponding values become N/A placeholders instead of aborting.
func ReadIncidents(path string) ([]Incident, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open incidents file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse incidents file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	// Map header names to positions, then warn about anything absent.
	position := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		position[strings.TrimSpace(name)] = i
	}

	var warnings []string
	for _, col := range incidentColumns {
		if _, ok := position[col]; !ok {
			warnings = append(warnings, fmt.Sprintf("missing column %q, using %s placeholders", col, Placeholder))
		}
	}

	cell := func(row []string, col string) string {
		idx, ok := position[col]
		if !ok || idx >= len(row) {
			return Placeholder
		}
		value := strings.TrimSpace(row[idx])
		if value == "" {
			return Placeholder
		}
		return value
	}

	incidents := make([]Incident, 0, len(rows)-1)
	for i, row := range rows[1:] {
		inc := Incident{
			ID:       cell(row, "ID"),
			Area:     cell(row, "Area"),
			Time:     cell(row, "Time"),
			People:   cell(row, "People"),
			Ages:     cell(row, "Ages"),
			MainNeed: cell(row, "Main Need"),
			Message:  cell(row, "Message"),
		}
		if inc.ID == Placeholder {
			inc.ID = fmt.Sprintf("Unknown-%d", i)
		}
		incidents = append(incidents, inc)
	}
	return incidents, warnings, nil
}

// Describe flattens an incident into the prompt form the scoring
// criteria expect.
func (inc Incident) Describe() string {
	return fmt.Sprintf("Time: %s, Area: %s, People: %s, Ages: %s, Main Need: %s, Message: %s",
		inc.Time, inc.Area, inc.People, inc.Ages, inc.MainNeed, inc.Message)
}
