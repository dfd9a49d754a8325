package model

// Message is one role-tagged entry in a chat request.
type Message struct {
	Role    string
	Content string
}

// Chat roles understood by the transport clients.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CallRequest describes one generation request. It is built once and
// never mutated; retries reuse the same request.
type CallRequest struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// UserRequest builds a single-message request from prompt text.
func UserRequest(prompt string, temperature float32, maxTokens int) CallRequest {
	return CallRequest{
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// CallResult is the outcome of one invocation: either usable text or a
// failure reason. Exactly one of the two is meaningful.
type CallResult struct {
	Text   string
	OK     bool
	Reason string
}

// Success wraps non-empty response text.
func Success(text string) CallResult {
	return CallResult{Text: text, OK: true}
}

// Failure records why no usable text was produced.
func Failure(reason string) CallResult {
	return CallResult{Reason: reason}
}
