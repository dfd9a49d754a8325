package contract

import (
	"regexp"
	"strconv"
	"strings"
)

// Score bounds for the numeric-range contract. The documented scoring
// rule starts at a base of 5 and adds at most +2, +3 and +1.
const (
	ScoreMin = 0
	ScoreMax = 15
)

var digitRun = regexp.MustCompile(`\d+`)

// ExtractScore pulls the first run of digits out of text and accepts it
// only within [ScoreMin, ScoreMax]. Absent digits or out-of-range
// values return ok=false rather than an error: this contract treats any
// uncertainty as "use the default", unlike the pattern and schema
// contracts which propagate typed failures.
func ExtractScore(text string) (score int, ok bool) {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	if cleaned == "" || cleaned == "none" || cleaned == "null" {
		return 0, false
	}

	match := digitRun.FindString(cleaned)
	if match == "" {
		return 0, false
	}

	n, err := strconv.Atoi(match)
	if err != nil || n < ScoreMin || n > ScoreMax {
		return 0, false
	}
	return n, true
}
