package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ScenarioMarker starts a new logical record in a scenario file.
const ScenarioMarker = "SCENARIO"

// ReadScenarios parses a scenario file. Each record begins with a line
// starting with SCENARIO and continues until the next such line. Text
// before the first marker is ignored.
func ReadScenarios(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenarios file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var scenarios []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			scenarios = append(scenarios, strings.TrimSpace(strings.Join(current, "\n")))
			current = nil
		}
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ScenarioMarker) {
			flush()
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scenarios file: %w", err)
	}
	flush()

	return scenarios, nil
}
