package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/psenarath/floodline/internal/model"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		config   model.LLMConfig
		wantName string
		wantErr  bool
	}{
		{
			name:     "openai",
			config:   model.LLMConfig{Provider: "openai", APIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:     "default is openai",
			config:   model.LLMConfig{APIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:     "ollama",
			config:   model.LLMConfig{Provider: "ollama"},
			wantName: "ollama",
		},
		{
			name:     "case insensitive",
			config:   model.LLMConfig{Provider: "OpenAI", APIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:    "unknown provider",
			config:  model.LLMConfig{Provider: "bedrock"},
			wantErr: true,
		},
		{
			name:    "openai without key",
			config:  model.LLMConfig{Provider: "openai"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewClient error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && client.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", client.Name(), tt.wantName)
			}
		})
	}
}

func TestPickModel(t *testing.T) {
	tests := []struct {
		provider string
		purpose  string
		want     string
	}{
		{"openai", PurposeReason, openai.GPT4o},
		{"openai", PurposeGeneral, openai.GPT4oMini},
		{"ollama", PurposeReason, "deepseek-r1:8b"},
		{"ollama", PurposeGeneral, "llama3.1:8b"},
		{"unknown", PurposeGeneral, openai.GPT4oMini},
	}

	for _, tt := range tests {
		if got := PickModel(tt.provider, tt.purpose); got != tt.want {
			t.Errorf("PickModel(%q, %q) = %q, want %q", tt.provider, tt.purpose, got, tt.want)
		}
	}
}
