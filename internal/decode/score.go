package decode

import (
	"github.com/psenarath/floodline/internal/contract"
	"github.com/psenarath/floodline/internal/model"
)

// DefaultScore is the neutral midpoint of the 0-15 scale, substituted
// whenever a score cannot be extracted. Matching the documented
// base-score-of-5 rule, a defaulted record is still emitted: downstream
// planning needs a score for every incident.
const DefaultScore = 5

// DecodeScore wraps the score extracted from text, or the default, into
// a record. It never fails: the numeric contract treats all uncertainty
// as "use the default". Calling it twice on the same input yields the
// same record.
func DecodeScore(incidentID, area, text string) model.ScoreRecord {
	rec := model.ScoreRecord{
		IncidentID: incidentID,
		Area:       area,
	}

	if score, ok := contract.ExtractScore(text); ok {
		rec.Score = score
	} else {
		rec.Score = DefaultScore
		rec.Defaulted = true
	}
	return rec
}
