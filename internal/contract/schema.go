package contract

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// FieldKind enumerates the value types a schema field accepts.
type FieldKind int

const (
	KindString FieldKind = iota
	KindFloat
	KindInt
	KindEnum
)

// FieldSpec declares one field of a JSON contract: its canonical name,
// accepted aliases, type, whether it must be present, a default for
// optional fields, the closed value set for enums, and an optional
// lower bound for numeric fields.
type FieldSpec struct {
	Name     string
	Aliases  []string
	Kind     FieldKind
	Required bool
	Default  any
	Enum     []string
	Min      *float64
}

// SchemaContract validates fenced JSON against a declarative field
// table. All record shapes are evaluated by the same rules, so adding a
// field is a one-line change to the table.
type SchemaContract struct {
	Fields []FieldSpec
}

// Check reports whether text decodes cleanly under the schema.
func (c *SchemaContract) Check(text string) error {
	_, err := c.Decode(text)
	return err
}

// Decode parses text and returns a canonical field map: every declared
// field present under its canonical name, aliases resolved, defaults
// applied. Malformed syntax yields ParseError; a missing required
// field, wrong type, out-of-set enum value or bound violation yields
// SchemaViolationError naming the field.
func (c *SchemaContract) Decode(text string) (map[string]any, error) {
	cleaned := StripFences(text)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &ParseError{Cause: err}
	}

	out := make(map[string]any, len(c.Fields))
	for _, field := range c.Fields {
		value, found := lookup(raw, field)
		if !found || value == nil {
			if field.Required {
				return nil, &SchemaViolationError{Field: field.Name, Cause: "required field missing"}
			}
			out[field.Name] = field.Default
			continue
		}

		normalized, err := coerce(field, value)
		if err != nil {
			return nil, err
		}
		out[field.Name] = normalized
	}
	return out, nil
}

// lookup finds the field's value under its canonical name first, then
// under each alias in order.
func lookup(raw map[string]any, field FieldSpec) (any, bool) {
	if v, ok := raw[field.Name]; ok {
		return v, true
	}
	for _, alias := range field.Aliases {
		if v, ok := raw[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

// coerce checks the JSON value against the field's declared kind.
func coerce(field FieldSpec, value any) (any, error) {
	switch field.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, &SchemaViolationError{Field: field.Name, Cause: fmt.Sprintf("expected string, got %T", value)}
		}
		return s, nil

	case KindFloat:
		f, ok := value.(float64)
		if !ok {
			return nil, &SchemaViolationError{Field: field.Name, Cause: fmt.Sprintf("expected number, got %T", value)}
		}
		if field.Min != nil && f < *field.Min {
			return nil, &SchemaViolationError{Field: field.Name, Cause: fmt.Sprintf("%v below minimum %v", f, *field.Min)}
		}
		return f, nil

	case KindInt:
		f, ok := value.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, &SchemaViolationError{Field: field.Name, Cause: fmt.Sprintf("expected integer, got %v", value)}
		}
		if field.Min != nil && f < *field.Min {
			return nil, &SchemaViolationError{Field: field.Name, Cause: fmt.Sprintf("%v below minimum %v", f, *field.Min)}
		}
		return int(f), nil

	case KindEnum:
		s, ok := value.(string)
		if !ok {
			return nil, &SchemaViolationError{Field: field.Name, Cause: fmt.Sprintf("expected string, got %T", value)}
		}
		for _, allowed := range field.Enum {
			if s == allowed {
				return s, nil
			}
		}
		return nil, &SchemaViolationError{Field: field.Name, Cause: fmt.Sprintf("%q not in allowed set", s)}
	}
	return nil, &SchemaViolationError{Field: field.Name, Cause: "unknown field kind"}
}

// CheckJSON verifies that text is well-formed JSON after fence
// stripping, without applying any field schema. The events pipeline
// retries on this weaker check; full schema violations are reported per
// item instead of retried.
func CheckJSON(text string) error {
	cleaned := StripFences(text)
	if cleaned == "" {
		return ErrEmptyResponse
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return &ParseError{Cause: err}
	}
	return nil
}

// StripFences removes surrounding Markdown code-fence markers the model
// may wrap JSON in.
func StripFences(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
