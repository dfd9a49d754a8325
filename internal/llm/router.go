package llm

import openai "github.com/sashabaranov/go-openai"

// Purpose tags map a logical need to a concrete model per provider.
const (
	// PurposeReason selects a model for chain-of-thought reasoning
	PurposeReason = "reason"

	// PurposeGeneral selects a cheap model for classification and
	// extraction
	PurposeGeneral = "general"
)

// PickModel returns the model identifier for a provider and purpose.
// Unknown combinations fall back to the provider's general model.
func PickModel(provider, purpose string) string {
	switch provider {
	case "openai":
		if purpose == PurposeReason {
			return openai.GPT4o
		}
		return openai.GPT4oMini

	case "ollama":
		if purpose == PurposeReason {
			return "deepseek-r1:8b"
		}
		return "llama3.1:8b"
	}
	return openai.GPT4oMini
}
