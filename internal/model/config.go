package model

import "time"

// Config holds the complete runtime configuration.
type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Retry     RetryConfig     `yaml:"retry"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Output    OutputConfig    `yaml:"output"`
}

// LLMConfig configures the transport client and model routing.
type LLMConfig struct {
	// Provider name: "openai" (covers any OpenAI-compatible endpoint
	// via BaseURL)
	Provider string `yaml:"provider"`

	// Model overrides the router's choice when non-empty
	Model string `yaml:"model"`

	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`

	// Timeout for a single API request
	Timeout time.Duration `yaml:"timeout"`
}

// RetryConfig bounds the invocation wrapper.
type RetryConfig struct {
	// MaxAttempts is the total call budget per item, not the number
	// of retries after the first call
	MaxAttempts int `yaml:"max_attempts"`

	// Backoff is the constant delay between attempts
	Backoff time.Duration `yaml:"backoff"`
}

// RateLimitConfig spaces out transport calls in the events pipeline.
type RateLimitConfig struct {
	// Interval between successive extraction calls
	Interval time.Duration `yaml:"interval"`
	Burst    int           `yaml:"burst"`
}

// CacheConfig controls the in-memory response cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// OutputConfig controls destinations and reporting.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`

	// DedupColumn names the column used to drop rows already present
	// in the destination. Empty disables de-duplication, which means
	// re-running a pipeline against the same file duplicates rows.
	DedupColumn string `yaml:"dedup_column"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "openai",
			Timeout:  30 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			Backoff:     2 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Interval: 6 * time.Second,
			Burst:    1,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Output: OutputConfig{},
	}
}
