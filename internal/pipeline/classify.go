package pipeline

import (
	"context"
	"fmt"

	"github.com/psenarath/floodline/internal/contract"
	"github.com/psenarath/floodline/internal/decode"
	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/prompt"
	"github.com/psenarath/floodline/internal/sink"
)

// ClassificationColumns are the destination columns for classification
// records.
var ClassificationColumns = []string{"District", "Intent", "Priority"}

// Classifier turns free-text crisis messages into classification
// records, appending each record to the destination as soon as it is
// decoded.
type Classifier struct {
	client  llm.Client
	invoker *llm.Invoker
	out     sink.Sink
	events  Events
	pattern *contract.PatternContract
}

// NewClassifier wires a classifier. The transport client is passed in
// by the caller, which owns its lifecycle.
func NewClassifier(client llm.Client, retry model.RetryConfig, out sink.Sink, events Events) *Classifier {
	if events == nil {
		events = NopEvents{}
	}
	return &Classifier{
		client:  client,
		invoker: llm.NewInvoker(retry.MaxAttempts, retry.Backoff, events.RetryScheduled),
		out:     out,
		events:  events,
		pattern: contract.NewPatternContract([]string{"District", "Intent", "Priority"}, "|"),
	}
}

// Run processes messages sequentially. Empty lines are skipped; items
// whose responses never satisfy the pattern contract are counted as
// failed and dropped. Cancellation stops before the next item and marks
// the summary interrupted.
func (c *Classifier) Run(ctx context.Context, messages []string) (Summary, error) {
	sum := Summary{Total: len(messages)}

	for i, text := range messages {
		if ctx.Err() != nil {
			sum.Interrupted = true
			break
		}
		if text == "" {
			sum.Skipped++
			c.events.ItemSkipped(i+1, "empty line")
			continue
		}
		c.events.ItemStarted(i+1, sum.Total, preview(text))

		promptText, spec, err := prompt.Render(prompt.FewShot, prompt.Params{
			"role":        "message classifier",
			"examples":    prompt.ClassificationExamples,
			"query":       "Review: " + text,
			"constraints": prompt.ClassificationConstraints,
			"format":      prompt.ClassificationFormat,
		})
		if err != nil {
			return sum, fmt.Errorf("render classification prompt: %w", err)
		}

		req := model.UserRequest(promptText, spec.Temperature, spec.MaxTokens)
		res := c.invoker.InvokeChecked(ctx, c.client, req, c.pattern)
		if !res.OK {
			if ctx.Err() != nil {
				sum.Interrupted = true
				break
			}
			sum.Failed++
			c.events.ItemFailed(i+1, res.Reason)
			continue
		}

		rec, err := decode.DecodeClassification(res.Text)
		if err != nil {
			sum.Failed++
			c.events.ItemFailed(i+1, err.Error())
			continue
		}

		if err := c.out.Append([]sink.Row{ClassificationRow(rec)}); err != nil {
			sum.Failed++
			c.events.ItemFailed(i+1, fmt.Sprintf("persist record: %v", err))
			continue
		}
		sum.Succeeded++
		c.events.ItemSucceeded(i + 1)
	}
	return sum, nil
}

// ClassificationRow flattens a record to destination cells.
func ClassificationRow(rec model.ClassificationRecord) sink.Row {
	return sink.Row{rec.District, string(rec.Intent), string(rec.Priority)}
}
