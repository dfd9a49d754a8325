package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/prompt"
)

// routeStrategy frames the Tree-of-Thought planning problem.
const routeStrategy = `You have a rescue boat at Ragama. Explore the possibilities of how you can save people given the incident scores below: save in descending score order, save the closest first, save the furthest first, and choose the optimal route.`

// Commander plans a rescue route over scored incidents with
// Tree-of-Thought reasoning.
type Commander struct {
	reasoning llm.Client
	invoker   *llm.Invoker
	events    Events
}

// NewCommander wires a commander over the reasoning client.
func NewCommander(reasoning llm.Client, retry model.RetryConfig, events Events) *Commander {
	if events == nil {
		events = NopEvents{}
	}
	return &Commander{
		reasoning: reasoning,
		invoker:   llm.NewInvoker(retry.MaxAttempts, retry.Backoff, events.RetryScheduled),
		events:    events,
	}
}

// Plan generates the strategic assessment for the scored incidents.
// Unlike scoring, there is no safe default for a route: exhaustion is
// surfaced as an error.
func (c *Commander) Plan(ctx context.Context, records []model.ScoreRecord) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no scored incidents to plan over")
	}

	var table strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&table, "Incident ID %s (Area %s): score %d\n", rec.IncidentID, rec.Area, rec.Score)
	}

	promptText, spec, err := prompt.Render(prompt.ToTReasoning, prompt.Params{
		"role":     "strategic planner",
		"branches": "3",
		"problem":  routeStrategy + "\n\n" + table.String(),
	})
	if err != nil {
		return "", fmt.Errorf("render planning prompt: %w", err)
	}

	res := c.invoker.Invoke(ctx, c.reasoning, model.UserRequest(promptText, spec.Temperature, spec.MaxTokens))
	if !res.OK {
		return "", fmt.Errorf("strategic planning failed: %s", res.Reason)
	}
	return res.Text, nil
}
