// Package decode converts contract-validated response text into typed
// records. Decoding is deterministic: the same text always yields the
// same record or the same error.
package decode

import (
	"fmt"
	"strings"

	"github.com/psenarath/floodline/internal/contract"
	"github.com/psenarath/floodline/internal/model"
)

// ClassificationDelimiter separates the labeled segments of a
// classification response.
const ClassificationDelimiter = "|"

// DecodeClassification splits pattern text into a classification
// record: segments split on the delimiter, each segment split on the
// first colon, whitespace trimmed. Unknown keys are retained verbatim
// in Extra; known keys must carry values from their closed sets.
func DecodeClassification(text string) (model.ClassificationRecord, error) {
	var rec model.ClassificationRecord

	for _, segment := range strings.Split(text, ClassificationDelimiter) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		key, value, found := strings.Cut(segment, ":")
		if !found {
			// No colon: keep the raw segment so nothing is lost.
			rec.Extra = append(rec.Extra, model.Field{Key: segment, Value: segment})
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "district":
			rec.District = value
		case "intent":
			intent := model.Intent(canonical(value))
			if !model.ValidIntent(intent) {
				return model.ClassificationRecord{}, &contract.FormatMismatchError{
					Reason: fmt.Sprintf("intent %q outside allowed set", value),
				}
			}
			rec.Intent = intent
		case "priority":
			priority := model.Priority(canonical(value))
			if !model.ValidPriority(priority) {
				return model.ClassificationRecord{}, &contract.FormatMismatchError{
					Reason: fmt.Sprintf("priority %q outside allowed set", value),
				}
			}
			rec.Priority = priority
		default:
			rec.Extra = append(rec.Extra, model.Field{Key: key, Value: value})
		}
	}

	if rec.District == "" || rec.Intent == "" || rec.Priority == "" {
		return model.ClassificationRecord{}, &contract.FormatMismatchError{
			Reason: "missing district, intent or priority segment",
		}
	}
	return rec, nil
}

// EncodeClassification renders a record back to pattern text. Decoding
// the result yields the same district/intent/priority triple.
func EncodeClassification(rec model.ClassificationRecord) string {
	parts := []string{
		"District: " + rec.District,
		"Intent: " + string(rec.Intent),
		"Priority: " + string(rec.Priority),
	}
	for _, f := range rec.Extra {
		parts = append(parts, f.Key+": "+f.Value)
	}
	return strings.Join(parts, " "+ClassificationDelimiter+" ")
}

// canonical title-cases an enum value so "rescue" and "RESCUE" both
// normalize to "Rescue".
func canonical(value string) string {
	if value == "" {
		return value
	}
	lower := strings.ToLower(value)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
