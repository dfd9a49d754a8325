package contract

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse reports a blank or whitespace-only model response.
var ErrEmptyResponse = errors.New("empty response")

// FormatMismatchError reports text that does not carry the labeled
// segments a pattern contract requires.
type FormatMismatchError struct {
	Reason string
}

func (e *FormatMismatchError) Error() string {
	return "format mismatch: " + e.Reason
}

// ParseError reports text that is not well-formed JSON after fence
// stripping.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// SchemaViolationError reports well-formed JSON whose shape or values
// break the declared schema. Field names the offending field.
type SchemaViolationError struct {
	Field string
	Cause string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation: %s: %s", e.Field, e.Cause)
}
