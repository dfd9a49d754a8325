// Package llm wraps the external text-generation service: transport
// clients for concrete providers, a purpose-based model router, an
// in-memory response cache, and the retrying invocation wrapper every
// pipeline calls through.
package llm

import (
	"context"

	"github.com/psenarath/floodline/internal/model"
)

// Client is the transport to a chat-completion service. Chat performs
// one network call and returns the raw response text. An empty string
// with a nil error means the service produced no usable output; the
// invoker treats both that and a transport error as retryable.
type Client interface {
	// Name returns the provider name
	Name() string

	// Chat sends the request and returns the response text
	Chat(ctx context.Context, req model.CallRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}
