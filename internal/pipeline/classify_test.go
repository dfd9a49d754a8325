package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/sink"
)

// fakeClient serves canned responses in call order. onCall, when set,
// runs before each response is returned.
type fakeClient struct {
	responses []string
	errs      []error
	calls     int
	onCall    func(call int)
}

func (c *fakeClient) Name() string                     { return "fake" }
func (c *fakeClient) IsAvailable(context.Context) bool { return true }

func (c *fakeClient) Chat(ctx context.Context, req model.CallRequest) (string, error) {
	i := c.calls
	c.calls++
	if c.onCall != nil {
		c.onCall(i)
	}
	if i >= len(c.responses) {
		return "", errors.New("no scripted response")
	}
	var err error
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return c.responses[i], err
}

// memorySink collects appended rows per call.
type memorySink struct {
	rows    []sink.Row
	flushes int
}

func (m *memorySink) Append(rows []sink.Row) error {
	m.rows = append(m.rows, rows...)
	m.flushes++
	return nil
}

// failingSink rejects every append.
type failingSink struct{}

func (failingSink) Append([]sink.Row) error { return errors.New("disk full") }

// noRetry keeps pipeline tests fast: single attempt, no backoff.
var noRetry = model.RetryConfig{MaxAttempts: 1, Backoff: 0}

func TestClassifier_Run(t *testing.T) {
	client := &fakeClient{responses: []string{
		"District: Gampaha | Intent: Rescue | Priority: High",
	}}
	out := &memorySink{}

	c := NewClassifier(client, noRetry, out, nil)
	sum, err := c.Run(context.Background(), []string{"Water rising fast in Kaduwela, 4 people on roof"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.Succeeded != 1 || sum.Failed != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if len(out.rows) != 1 {
		t.Fatalf("rows = %v", out.rows)
	}
	want := sink.Row{"Gampaha", "Rescue", "High"}
	for i := range want {
		if out.rows[0][i] != want[i] {
			t.Errorf("row = %v, want %v", out.rows[0], want)
		}
	}
}

func TestClassifier_ExhaustedBudgetFailsItem(t *testing.T) {
	// Every response lacks the required shape, so the budget is spent
	// and the item is counted failed with no record persisted.
	client := &fakeClient{responses: []string{"no shape", "still no shape", "nope"}}
	out := &memorySink{}

	c := NewClassifier(client, model.RetryConfig{MaxAttempts: 3, Backoff: 0}, out, nil)
	sum, err := c.Run(context.Background(), []string{"some message"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if client.calls != 3 {
		t.Errorf("calls = %d, want the full budget", client.calls)
	}
	if sum.Failed != 1 || sum.Succeeded != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if len(out.rows) != 0 {
		t.Errorf("no record should be persisted for a failed item: %v", out.rows)
	}
}

func TestClassifier_AbsentResponsesFailItem(t *testing.T) {
	// The transport returns blank text on every attempt.
	client := &fakeClient{responses: []string{"", "", ""}}
	out := &memorySink{}

	c := NewClassifier(client, model.RetryConfig{MaxAttempts: 3, Backoff: 0}, out, nil)
	sum, err := c.Run(context.Background(), []string{"some message"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.Failed != 1 || len(out.rows) != 0 {
		t.Errorf("summary = %+v, rows = %v", sum, out.rows)
	}
}

func TestClassifier_EmptyLinesSkipped(t *testing.T) {
	client := &fakeClient{responses: []string{
		"District: Galle | Intent: Info | Priority: Low",
	}}
	out := &memorySink{}

	c := NewClassifier(client, noRetry, out, nil)
	sum, err := c.Run(context.Background(), []string{"", "flood news from Galle", ""})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.Total != 3 || sum.Skipped != 2 || sum.Succeeded != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if client.calls != 1 {
		t.Errorf("calls = %d, skipped lines must not reach the transport", client.calls)
	}
}

func TestClassifier_AppendFailureCountsItem(t *testing.T) {
	client := &fakeClient{responses: []string{
		"District: Kandy | Intent: Supply | Priority: Low",
	}}

	c := NewClassifier(client, noRetry, failingSink{}, nil)
	sum, err := c.Run(context.Background(), []string{"message"})
	if err != nil {
		t.Fatalf("a sink failure is per-item, not run-fatal: %v", err)
	}
	if sum.Failed != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestClassifier_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &fakeClient{
		responses: []string{
			"District: Gampaha | Intent: Rescue | Priority: High",
			"District: Galle | Intent: Info | Priority: Low",
		},
		onCall: func(call int) {
			if call == 0 {
				cancel()
			}
		},
	}
	out := &memorySink{}

	c := NewClassifier(client, noRetry, out, nil)
	sum, err := c.Run(ctx, []string{"first", "second", "third"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !sum.Interrupted {
		t.Error("summary should be marked interrupted")
	}
	if sum.Succeeded != 1 || len(out.rows) != 1 {
		t.Errorf("the item completed before cancellation should persist: %+v, rows %v", sum, out.rows)
	}
}
