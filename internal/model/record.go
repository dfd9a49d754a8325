package model

// Intent classifies what the sender of a crisis message wants.
type Intent string

const (
	IntentInfo   Intent = "Info"
	IntentRescue Intent = "Rescue"
	IntentSupply Intent = "Supply"
	IntentOther  Intent = "Other"
	IntentNone   Intent = "None"
)

// Priority ranks how urgently a message must be acted on.
type Priority string

const (
	PriorityHigh Priority = "High"
	PriorityLow  Priority = "Low"
	PriorityNone Priority = "None"
)

// Status classifies the severity of a crisis event.
type Status string

const (
	StatusCritical Status = "Critical"
	StatusWarning  Status = "Warning"
	StatusStable   Status = "Stable"
)

// Districts is the closed set of 25 administrative districts. Every
// persisted CrisisEventRecord must name one of these.
var Districts = []string{
	"Ampara", "Anuradhapura", "Badulla", "Batticaloa", "Colombo",
	"Galle", "Gampaha", "Hambantota", "Jaffna", "Kalutara",
	"Kandy", "Kegalle", "Kilinochchi", "Kurunegala", "Mannar",
	"Matale", "Matara", "Monaragala", "Mullaitivu", "Nuwara Eliya",
	"Polonnaruwa", "Puttalam", "Ratnapura", "Trincomalee", "Vavuniya",
}

// ValidDistrict reports whether name is one of the 25 districts.
func ValidDistrict(name string) bool {
	for _, d := range Districts {
		if d == name {
			return true
		}
	}
	return false
}

// ValidIntent reports whether v is a member of the closed intent set.
func ValidIntent(v Intent) bool {
	switch v {
	case IntentInfo, IntentRescue, IntentSupply, IntentOther, IntentNone:
		return true
	}
	return false
}

// ValidPriority reports whether v is a member of the closed priority set.
func ValidPriority(v Priority) bool {
	switch v {
	case PriorityHigh, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// ValidStatus reports whether v is a member of the closed status set.
func ValidStatus(v Status) bool {
	switch v {
	case StatusCritical, StatusWarning, StatusStable:
		return true
	}
	return false
}

// Field is a key/value pair retained verbatim from a decoded response.
type Field struct {
	Key   string
	Value string
}

// ClassificationRecord is the decoded result of classifying one message.
// Extra holds keys the decoder did not recognize, in arrival order, so
// responses with additional labeled segments survive a round trip.
type ClassificationRecord struct {
	District string
	Intent   Intent
	Priority Priority
	Extra    []Field
}

// CrisisEventRecord is a validated structured crisis event extracted
// from a news feed item.
type CrisisEventRecord struct {
	District         string   `json:"district"`
	FloodLevelMeters *float64 `json:"flood_level_meters"`
	VictimCount      int      `json:"victim_count"`
	MainNeed         string   `json:"main_need"`
	Status           Status   `json:"status"`
}

// ScoreRecord assigns a severity score to one incident. Score is always
// within [0, 15]; when extraction fails the neutral default 5 is used.
type ScoreRecord struct {
	IncidentID string
	Area       string
	Score      int
	Defaulted  bool
}
