// Package contract defines the structural requirements a model response
// must satisfy before it is trusted. Each use case selects one checker:
// a labeled-pattern match, a declarative JSON schema, or a bounded
// numeric range.
package contract

// Contract checks a candidate response against a structural requirement.
// A nil return means the text may be decoded; a non-nil return carries a
// typed reason (EmptyResponse, FormatMismatch, ParseError or
// SchemaViolation).
type Contract interface {
	Check(text string) error
}

// CheckFunc adapts a plain function to the Contract interface.
type CheckFunc func(text string) error

// Check calls f(text).
func (f CheckFunc) Check(text string) error { return f(text) }
