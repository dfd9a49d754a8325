package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/psenarath/floodline/internal/decode"
	"github.com/psenarath/floodline/internal/input"
	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/prompt"
	"github.com/psenarath/floodline/internal/sink"
)

// ScoreColumns are the destination columns for score records.
var ScoreColumns = []string{"Incident ID", "Area", "Score"}

// ScoringCriteria is the rubric handed to the reasoning model. It is
// soft guidance: the add/subtract arithmetic is left to the model's own
// reasoning, not enforced mechanically.
const ScoringCriteria = `Based on the given incident, provide a mark for it. Start with a basic score of 5 for each incident and then add or subtract based on the following criteria:
1. If the age is less than 5 or more than 60, add 2 to the score
2. If there is a life threat or a need for rescue, add 3 to the score
3. If there is a need of medicine (insulin), add 1 to the score`

// Scorer assigns severity scores to incidents in two stages: a
// reasoning model applies the criteria, then a general model extracts
// the digits. Every incident gets a record; when either stage fails the
// neutral default is substituted instead of skipping.
type Scorer struct {
	reasoning llm.Client
	general   llm.Client
	invoker   *llm.Invoker
	events    Events
}

// NewScorer wires a scorer over the two routed clients.
func NewScorer(reasoning, general llm.Client, retry model.RetryConfig, events Events) *Scorer {
	if events == nil {
		events = NopEvents{}
	}
	return &Scorer{
		reasoning: reasoning,
		general:   general,
		invoker:   llm.NewInvoker(retry.MaxAttempts, retry.Backoff, events.RetryScheduled),
		events:    events,
	}
}

// Run scores incidents sequentially and returns the records in input
// order alongside the run summary.
func (s *Scorer) Run(ctx context.Context, incidents []input.Incident) ([]model.ScoreRecord, Summary, error) {
	sum := Summary{Total: len(incidents)}
	records := make([]model.ScoreRecord, 0, len(incidents))

	for i, inc := range incidents {
		if ctx.Err() != nil {
			sum.Interrupted = true
			break
		}
		s.events.ItemStarted(i+1, sum.Total, inc.ID+" | "+inc.Area)

		reasoningText, err := s.reason(ctx, inc)
		if err != nil {
			return records, sum, err
		}

		scoreText := ""
		if reasoningText != "" {
			scoreText, err = s.extract(ctx, reasoningText)
			if err != nil {
				return records, sum, err
			}
		}
		if ctx.Err() != nil {
			sum.Interrupted = true
			break
		}

		rec := decode.DecodeScore(inc.ID, inc.Area, scoreText)
		records = append(records, rec)
		sum.Succeeded++
		if rec.Defaulted {
			sum.Defaulted++
			s.events.ItemSkipped(i+1, "score extraction failed, default substituted")
		} else {
			s.events.ItemSucceeded(i + 1)
		}
	}
	return records, sum, nil
}

// reason runs the CoT stage. An exhausted invocation yields "" so the
// decoder falls back to the default score.
func (s *Scorer) reason(ctx context.Context, inc input.Incident) (string, error) {
	problem := ScoringCriteria + "\nIncident: " + inc.Describe()
	promptText, spec, err := prompt.Render(prompt.CoTReasoning, prompt.Params{
		"role":    "damage controlling officer",
		"problem": problem,
	})
	if err != nil {
		return "", fmt.Errorf("render scoring prompt: %w", err)
	}

	res := s.invoker.Invoke(ctx, s.reasoning, model.UserRequest(promptText, spec.Temperature, spec.MaxTokens))
	if !res.OK {
		return "", nil
	}
	return res.Text, nil
}

// extract runs the digit-extraction stage over the reasoning text.
func (s *Scorer) extract(ctx context.Context, reasoningText string) (string, error) {
	promptText, spec, err := prompt.Render(prompt.ZeroShot, prompt.Params{
		"role":        "score extractor",
		"instruction": "Extract the score from the given text",
		"constraints": "Return only the score as a single number",
		"format":      "Only digits",
	})
	if err != nil {
		return "", fmt.Errorf("render extraction prompt: %w", err)
	}

	res := s.invoker.Invoke(ctx, s.general, model.UserRequest(promptText+"\n\nText: "+reasoningText, spec.Temperature, spec.MaxTokens))
	if !res.OK {
		return "", nil
	}
	return res.Text, nil
}

// ScoreRow flattens a record to destination cells.
func ScoreRow(rec model.ScoreRecord) sink.Row {
	return sink.Row{rec.IncidentID, rec.Area, strconv.Itoa(rec.Score)}
}
