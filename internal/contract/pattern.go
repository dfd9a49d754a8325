package contract

import (
	"regexp"
	"strings"
)

// PatternContract requires the text to contain, case-insensitively, a
// fixed sequence of labeled segments separated by a delimiter, e.g.
// "District: ... | Intent: ... | Priority: ...".
type PatternContract struct {
	labels    []string
	delimiter string
	re        *regexp.Regexp
}

// NewPatternContract compiles a contract for the given labels in order.
func NewPatternContract(labels []string, delimiter string) *PatternContract {
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = regexp.QuoteMeta(label) + `:\s*\w+`
	}
	pattern := "(?i)" + strings.Join(parts, `.*`+regexp.QuoteMeta(delimiter)+`\s*`)

	return &PatternContract{
		labels:    labels,
		delimiter: delimiter,
		re:        regexp.MustCompile(pattern),
	}
}

// Check validates text against the pattern. Empty text fails with
// ErrEmptyResponse; missing or out-of-order segments fail with
// FormatMismatchError.
func (c *PatternContract) Check(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyResponse
	}
	if !c.re.MatchString(text) {
		return &FormatMismatchError{
			Reason: "expected " + c.Describe(),
		}
	}
	return nil
}

// Describe returns the human-readable shape the contract expects.
func (c *PatternContract) Describe() string {
	parts := make([]string, len(c.labels))
	for i, label := range c.labels {
		parts[i] = label + ": ..."
	}
	return strings.Join(parts, " "+c.delimiter+" ")
}
