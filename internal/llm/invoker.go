package llm

import (
	"context"
	"strings"
	"time"

	"github.com/psenarath/floodline/internal/contract"
	"github.com/psenarath/floodline/internal/model"
)

// retryState tracks where an invocation is within its attempt budget.
type retryState int

const (
	stateAttempting retryState = iota
	stateRetrying
	stateSucceeded
	stateExhausted
)

// Notify receives one progress notification per scheduled retry: the
// attempt that just failed, the budget, and the failure reason. It must
// not affect control flow.
type Notify func(attempt, maxAttempts int, reason string)

// Invoker wraps every transport call with bounded retries and a fixed
// backoff. A transport fault, an empty response, or a response the
// attached contract rejects are all retryable; after the attempt budget
// is spent the last failure reason is returned as a per-item outcome,
// never a run-aborting error.
type Invoker struct {
	maxAttempts int
	backoff     time.Duration
	notify      Notify

	// sleep is injectable so retry logic is testable without real
	// delays; it must honor ctx cancellation
	sleep func(ctx context.Context, d time.Duration) error
}

// NewInvoker creates an invoker with the given attempt budget and
// constant backoff. notify may be nil.
func NewInvoker(maxAttempts int, backoff time.Duration, notify Notify) *Invoker {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &Invoker{
		maxAttempts: maxAttempts,
		backoff:     backoff,
		notify:      notify,
		sleep:       sleepContext,
	}
}

// Invoke performs up to the attempt budget of sequential calls and
// returns the first non-empty response.
func (iv *Invoker) Invoke(ctx context.Context, client Client, req model.CallRequest) model.CallResult {
	return iv.InvokeChecked(ctx, client, req, nil)
}

// InvokeChecked additionally requires each response to pass the given
// contract before it is accepted. A contract-invalid response is
// retried with the same prompt inside the same budget, relying on model
// non-determinism for a better answer.
func (iv *Invoker) InvokeChecked(ctx context.Context, client Client, req model.CallRequest, check contract.Contract) model.CallResult {
	var (
		text       string
		lastReason string
		attempt    int
	)

	state := stateAttempting
	for {
		switch state {
		case stateAttempting:
			attempt++
			var err error
			text, err = client.Chat(ctx, req)

			switch {
			case err != nil:
				lastReason = err.Error()
			case strings.TrimSpace(text) == "":
				lastReason = contract.ErrEmptyResponse.Error()
			case check != nil:
				if cerr := check.Check(text); cerr != nil {
					lastReason = cerr.Error()
				} else {
					state = stateSucceeded
					continue
				}
			default:
				state = stateSucceeded
				continue
			}

			if attempt >= iv.maxAttempts {
				state = stateExhausted
			} else {
				state = stateRetrying
			}

		case stateRetrying:
			if iv.notify != nil {
				iv.notify(attempt, iv.maxAttempts, lastReason)
			}
			if err := iv.sleep(ctx, iv.backoff); err != nil {
				// Cancelled mid-backoff: the item's result is lost,
				// the orchestrator transitions to flush-and-exit.
				lastReason = err.Error()
				state = stateExhausted
				continue
			}
			state = stateAttempting

		case stateSucceeded:
			return model.Success(text)

		case stateExhausted:
			return model.Failure(lastReason)
		}
	}
}

// sleepContext blocks for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
