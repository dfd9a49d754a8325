package llm

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/psenarath/floodline/internal/model"
)

// OpenAIClient implements the Client interface for OpenAI-compatible
// endpoints (any vendor's compatibility API is reachable via BaseURL).
type OpenAIClient struct {
	client *openai.Client
	config model.LLMConfig
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config model.LLMConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (c *OpenAIClient) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (c *OpenAIClient) IsAvailable(ctx context.Context) bool {
	_, err := c.client.ListModels(ctx)
	if err != nil {
		// Log the actual error for debugging (helps users diagnose API key issues)
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// Chat sends the request through the Chat Completions API and returns
// the first choice's text.
func (c *OpenAIClient) Chat(ctx context.Context, req model.CallRequest) (string, error) {
	chatModel := c.config.Model
	if chatModel == "" {
		chatModel = PickModel(c.Name(), PurposeGeneral)
	}

	timeout := c.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	temperature := req.Temperature
	if temperature == 0 {
		// go-openai omits a zero temperature, which the API treats as
		// the default (1). Send the smallest representable value so
		// deterministic runs stay deterministic.
		temperature = math.SmallestNonzeroFloat32
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       chatModel,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
