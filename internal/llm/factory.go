package llm

import (
	"fmt"
	"strings"

	"github.com/psenarath/floodline/internal/model"
)

// NewClient creates a transport client based on configuration. The
// returned client is passed explicitly into every pipeline; there is no
// process-wide singleton.
func NewClient(config model.LLMConfig) (Client, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai", "":
		return NewOpenAIClient(config)

	case "ollama":
		return NewOllamaClient(config)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}
