package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Transcript writes a banner-formatted reasoning transcript. Lines are
// appended in run order so transcripts from different temperatures stay
// positionally comparable.
type Transcript struct {
	f *os.File
	w *bufio.Writer
}

// NewTranscript creates (truncating) the transcript file, making parent
// directories as needed.
func NewTranscript(path string) (*Transcript, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create transcript: %w", err)
	}
	return &Transcript{f: f, w: bufio.NewWriter(f)}, nil
}

// Line writes one line of text.
func (t *Transcript) Line(text string) {
	_, _ = t.w.WriteString(text)
	_ = t.w.WriteByte('\n')
}

// Banner writes a title between heavy rules.
func (t *Transcript) Banner(title string) {
	rule := strings.Repeat("=", 80)
	t.Line(rule)
	t.Line(title)
	t.Line(rule)
}

// Section writes a title between light rules.
func (t *Transcript) Section(title string) {
	rule := strings.Repeat("-", 80)
	t.Line(rule)
	t.Line(title)
	t.Line(rule)
}

// Close flushes and closes the transcript.
func (t *Transcript) Close() error {
	if err := t.w.Flush(); err != nil {
		_ = t.f.Close()
		return fmt.Errorf("flush transcript: %w", err)
	}
	if err := t.f.Close(); err != nil {
		return fmt.Errorf("close transcript: %w", err)
	}
	return nil
}
