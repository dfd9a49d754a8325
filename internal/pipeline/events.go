package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/psenarath/floodline/internal/contract"
	"github.com/psenarath/floodline/internal/decode"
	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/prompt"
	"github.com/psenarath/floodline/internal/sink"
)

// EventColumns are the destination columns for crisis event records.
var EventColumns = []string{"District", "Flood Level (m)", "Victim Count", "Main Need", "Status"}

// eventSchemaText is the shape description embedded in the extraction
// prompt. The decoder's field table is the authoritative contract; this
// text only steers the model toward it.
const eventSchemaText = `{
  "district": "String (must be one of the 25 districts)",
  "flood_level_meters": "Float or null (use null if not mentioned)",
  "victim_count": "Integer",
  "main_need": "String (the most urgent requirement mentioned)",
  "status": "String (MUST be exactly 'Critical', 'Warning' or 'Stable')"
}`

// Extractor converts news feed lines into validated crisis event
// records. Records are aggregated in input order and flushed once: to
// the primary destination on completion, or to the partial destination
// when the run is interrupted.
type Extractor struct {
	client  llm.Client
	invoker *llm.Invoker
	out     sink.Sink
	partial sink.Sink
	limiter *rate.Limiter
	events  Events
}

// NewExtractor wires an extractor. The rate limiter spaces out
// transport calls; partial receives the aggregation table when a run is
// cut short.
func NewExtractor(client llm.Client, retry model.RetryConfig, limit model.RateLimitConfig, out, partial sink.Sink, events Events) *Extractor {
	if events == nil {
		events = NopEvents{}
	}
	burst := limit.Burst
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Inf, burst)
	if limit.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(limit.Interval), burst)
	}
	return &Extractor{
		client:  client,
		invoker: llm.NewInvoker(retry.MaxAttempts, retry.Backoff, events.RetryScheduled),
		out:     out,
		partial: partial,
		limiter: limiter,
		events:  events,
	}
}

// Run processes news feed lines sequentially. A response must be
// well-formed JSON within the retry budget; schema violations after
// that are reported per item and skipped, never retried.
func (e *Extractor) Run(ctx context.Context, lines []string) (Summary, error) {
	sum := Summary{Total: len(lines)}
	var rows []sink.Row

	for i, text := range lines {
		if err := e.limiter.Wait(ctx); err != nil {
			sum.Interrupted = true
			break
		}
		e.events.ItemStarted(i+1, sum.Total, preview(text))

		promptText, spec, err := prompt.Render(prompt.JSONExtract, prompt.Params{
			"role":   "damage controlling officer",
			"schema": eventSchemaText,
			"text":   text,
		})
		if err != nil {
			return sum, fmt.Errorf("render extraction prompt: %w", err)
		}

		req := model.UserRequest(promptText, spec.Temperature, spec.MaxTokens)
		res := e.invoker.InvokeChecked(ctx, e.client, req, contract.CheckFunc(contract.CheckJSON))
		if !res.OK {
			if ctx.Err() != nil {
				sum.Interrupted = true
				break
			}
			sum.Failed++
			e.events.ItemFailed(i+1, res.Reason)
			continue
		}

		rec, err := decode.DecodeCrisisEvent(res.Text)
		if err != nil {
			sum.Failed++
			e.events.ItemFailed(i+1, err.Error())
			continue
		}

		rows = append(rows, EventRow(rec))
		sum.Succeeded++
		e.events.ItemSucceeded(i + 1)
	}

	dest := e.out
	label := "destination"
	if sum.Interrupted {
		dest = e.partial
		label = "partial destination"
	}
	if len(rows) > 0 {
		if err := dest.Append(rows); err != nil {
			return sum, fmt.Errorf("flush records: %w", err)
		}
		e.events.Flushed(label, len(rows))
	}
	return sum, nil
}

// EventRow flattens a record to destination cells.
func EventRow(rec model.CrisisEventRecord) sink.Row {
	level := ""
	if rec.FloodLevelMeters != nil {
		level = strconv.FormatFloat(*rec.FloodLevelMeters, 'f', -1, 64)
	}
	return sink.Row{
		rec.District,
		level,
		strconv.Itoa(rec.VictimCount),
		rec.MainNeed,
		string(rec.Status),
	}
}
