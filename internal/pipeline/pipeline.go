// Package pipeline drives the per-use-case orchestrators: iterate over
// input items, call the invocation wrapper, validate, decode, fall back
// where the contract allows it, and aggregate records in input order.
// Execution is strictly sequential; the only blocking points are the
// transport call and the retry backoff.
package pipeline

import "fmt"

// Summary aggregates per-item outcomes for one run.
type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int

	// Defaulted counts emitted records that carry a fallback value
	// rather than an extracted one (scoring only).
	Defaulted int

	// Interrupted marks a run cut short by cancellation. It is an
	// outcome, not an error: aggregated records were still flushed.
	Interrupted bool
}

// FatalConfigError aborts a whole run before any item is processed:
// missing or empty input source, or an unconstructible transport
// client.
type FatalConfigError struct {
	Reason string
	Cause  error
}

func (e *FatalConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fatal configuration error: %s: %v", e.Reason, e.Cause)
	}
	return "fatal configuration error: " + e.Reason
}

func (e *FatalConfigError) Unwrap() error { return e.Cause }

// preview shortens an input item for event emission, truncating on a
// rune boundary so multi-byte text stays valid UTF-8.
func preview(text string) string {
	const max = 50
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
