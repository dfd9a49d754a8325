package decode

import (
	"github.com/psenarath/floodline/internal/contract"
	"github.com/psenarath/floodline/internal/model"
)

var zero = 0.0

// eventFields is the declarative schema for crisis event extraction.
// The victim count may arrive under the legacy alias "vicLm_count"
// emitted by older prompt versions.
var eventFields = []contract.FieldSpec{
	{Name: "district", Kind: contract.KindEnum, Required: true, Enum: model.Districts},
	{Name: "flood_level_meters", Kind: contract.KindFloat, Min: &zero},
	{Name: "victim_count", Aliases: []string{"vicLm_count"}, Kind: contract.KindInt, Default: 0, Min: &zero},
	{Name: "main_need", Kind: contract.KindString, Default: "None"},
	{Name: "status", Kind: contract.KindEnum, Required: true, Enum: []string{
		string(model.StatusCritical), string(model.StatusWarning), string(model.StatusStable),
	}},
}

// EventSchema returns the schema contract for crisis events.
func EventSchema() *contract.SchemaContract {
	return &contract.SchemaContract{Fields: eventFields}
}

// DecodeCrisisEvent parses validated JSON text into a crisis event
// record, applying aliases and defaults and enforcing the closed
// district and status sets.
func DecodeCrisisEvent(text string) (model.CrisisEventRecord, error) {
	fields, err := EventSchema().Decode(text)
	if err != nil {
		return model.CrisisEventRecord{}, err
	}

	rec := model.CrisisEventRecord{
		District: fields["district"].(string),
		MainNeed: fields["main_need"].(string),
		Status:   model.Status(fields["status"].(string)),
	}
	if level, ok := fields["flood_level_meters"].(float64); ok {
		rec.FloodLevelMeters = &level
	}
	if count, ok := fields["victim_count"].(int); ok {
		rec.VictimCount = count
	}
	return rec, nil
}
