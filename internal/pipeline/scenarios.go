package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/prompt"
	"github.com/psenarath/floodline/internal/sink"
)

// NoResponseSentinel is written in place of the model's text when all
// attempts are exhausted, so run positions stay aligned across
// temperatures for later comparison.
const NoResponseSentinel = "[ERROR: no response received]"

// scenarioInstruction is appended to every scenario problem.
const scenarioInstruction = `Identify the immediate life threat, immediate health threat, and any other critical issues. Then provide a plan to address them.`

// StressTester analyzes each scenario with chain-of-thought reasoning
// under temperature stress: several runs at temperature 1, then one
// deterministic run at temperature 0, all written to one transcript.
type StressTester struct {
	client  llm.Client
	invoker *llm.Invoker
	events  Events

	// HotRuns is the number of temperature-1 runs per scenario.
	HotRuns int
}

// NewStressTester wires a stress tester with the default of three hot
// runs per scenario.
func NewStressTester(client llm.Client, retry model.RetryConfig, events Events) *StressTester {
	if events == nil {
		events = NopEvents{}
	}
	return &StressTester{
		client:  client,
		invoker: llm.NewInvoker(retry.MaxAttempts, retry.Backoff, events.RetryScheduled),
		events:  events,
		HotRuns: 3,
	}
}

// Run writes the full stress-test transcript. Summary.Total counts
// scenarios; Succeeded and Failed count individual reasoning calls.
func (st *StressTester) Run(ctx context.Context, scenarios []string, out *sink.Transcript) (Summary, error) {
	sum := Summary{Total: len(scenarios)}

	out.Banner("CHAIN-OF-THOUGHT REASONING RESULTS")
	out.Line("")

	for i, scenario := range scenarios {
		if ctx.Err() != nil {
			sum.Interrupted = true
			break
		}
		st.events.ItemStarted(i+1, sum.Total, preview(scenario))

		out.Section(fmt.Sprintf("PROBLEM %d of %d", i+1, sum.Total))
		out.Line(strings.TrimSpace(scenario))
		out.Line("")

		promptText, spec, err := prompt.Render(prompt.CoTReasoning, prompt.Params{
			"role":    "damage controlling officer",
			"problem": scenario + "\n\n" + scenarioInstruction,
		})
		if err != nil {
			return sum, fmt.Errorf("render scenario prompt: %w", err)
		}

		out.Line(fmt.Sprintf("TEMPERATURE 1 STRESS TEST (Problem %d)", i+1))
		for run := 1; run <= st.HotRuns; run++ {
			if ctx.Err() != nil {
				sum.Interrupted = true
				break
			}
			out.Line("")
			out.Line(fmt.Sprintf("Run %d:", run))
			st.record(ctx, out, model.UserRequest(promptText, 1, spec.MaxTokens), &sum)
		}
		if sum.Interrupted {
			break
		}

		out.Line("")
		out.Line(fmt.Sprintf("TEMPERATURE 0 TEST (Problem %d)", i+1))
		out.Line("")
		out.Line("Deterministic Run:")
		st.record(ctx, out, model.UserRequest(promptText, 0, spec.MaxTokens), &sum)
		out.Line("")
	}

	out.Banner("END OF RESULTS")
	return sum, nil
}

// record performs one reasoning call and writes either its text or the
// sentinel.
func (st *StressTester) record(ctx context.Context, out *sink.Transcript, req model.CallRequest, sum *Summary) {
	res := st.invoker.Invoke(ctx, st.client, req)
	if !res.OK {
		out.Line(NoResponseSentinel)
		sum.Failed++
		return
	}
	out.Line(res.Text)
	sum.Succeeded++
}
