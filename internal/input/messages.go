// Package input reads the three source formats: newline-delimited
// messages, SCENARIO-delimited scenario files, and the tabular incident
// source.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadMessages loads a newline-delimited message file. Lines are
// trimmed but empty lines are kept so the orchestrator can count them
// as skipped rather than silently dropping them.
func ReadMessages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open messages file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read messages file: %w", err)
	}
	return lines, nil
}

// ReadLines loads a file keeping only non-empty trimmed lines. The
// events pipeline uses it for news feed items.
func ReadLines(path string) ([]string, error) {
	all, err := ReadMessages(path)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(all))
	for _, line := range all {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
