package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/pipeline"
	"github.com/psenarath/floodline/internal/sink"
)

// Flags shared by the pipeline subcommands.
var (
	llmProvider string
	llmModel    string
	maxAttempts int
	backoff     time.Duration
	noCache     bool
	dedupColumn string
)

// addLLMFlags registers the shared transport and retry flags on cmd.
func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (default: routed per purpose)")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 3, "transport call budget per item")
	cmd.Flags().DurationVar(&backoff, "backoff", 2*time.Second, "constant delay between retry attempts")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the in-memory response cache")
}

// buildConfig assembles the run configuration from defaults, config
// file, environment and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.Retry.MaxAttempts = maxAttempts
	cfg.Retry.Backoff = backoff
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.DedupColumn = resolveDedupColumn()

	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, &pipeline.FatalConfigError{Reason: "OPENAI_API_KEY environment variable not set"}
		}
		if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
			cfg.LLM.BaseURL = base
		}
	case "ollama":
		// Ollama doesn't need an API key
		if base := os.Getenv("OLLAMA_BASE_URL"); base != "" {
			cfg.LLM.BaseURL = base
		}
	}
	return cfg, nil
}

// resolveDedupColumn prefers the --dedup-column flag, then the
// output.dedup_column config file entry.
func resolveDedupColumn() string {
	if dedupColumn != "" {
		return dedupColumn
	}
	return viper.GetString("output.dedup_column")
}

// newClient constructs the transport client for a logical purpose,
// wrapping it with the response cache when enabled. The client's
// lifecycle is owned here, never hidden in package state.
func newClient(cfg *model.Config, purpose string) (llm.Client, error) {
	llmCfg := cfg.LLM
	if llmCfg.Model == "" {
		llmCfg.Model = llm.PickModel(llmCfg.Provider, purpose)
	}

	client, err := llm.NewClient(llmCfg)
	if err != nil {
		return nil, &pipeline.FatalConfigError{Reason: "failed to construct transport client", Cause: err}
	}
	if cfg.Cache.Enabled {
		return llm.NewCachedClient(client, cfg.Cache.TTL), nil
	}
	return client, nil
}

// newLogger builds the event logger: human-readable on stderr, debug
// level when verbose.
func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// sinkForPath selects the destination format by extension: .xlsx gets
// the spreadsheet sink, everything else delimited text.
func sinkForPath(path string, columns []string, dedupColumn string) sink.Sink {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &sink.XLSXSink{Path: path, Columns: columns, DedupColumn: dedupColumn}
	}
	return &sink.CSVSink{Path: path, Columns: columns, DedupColumn: dedupColumn}
}

// requireInput turns a missing input source into a run-aborting
// configuration error before any processing starts.
func requireInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &pipeline.FatalConfigError{Reason: fmt.Sprintf("input file not found: %s", path), Cause: err}
	}
	return nil
}

// banner prints a heavy separator line with a title, the way run
// summaries are framed.
func banner(title string) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "============================================================")
	fmt.Fprintf(os.Stderr, "  %s\n", title)
	fmt.Fprintln(os.Stderr, "============================================================")
}

// printSummary reports the run outcome, distinguishing interruption
// from completion.
func printSummary(sum pipeline.Summary, destination string) {
	if sum.Interrupted {
		banner("INTERRUPTED")
		fmt.Fprintf(os.Stderr, "  Partial results saved to: %s\n", destination)
	} else {
		banner("PROCESSING COMPLETE")
	}
	fmt.Fprintf(os.Stderr, "  Total items:   %d\n", sum.Total)
	fmt.Fprintf(os.Stderr, "  Succeeded:     %d\n", sum.Succeeded)
	fmt.Fprintf(os.Stderr, "  Skipped:       %d\n", sum.Skipped)
	fmt.Fprintf(os.Stderr, "  Errors:        %d\n", sum.Failed)
	if sum.Defaulted > 0 {
		fmt.Fprintf(os.Stderr, "  Defaulted:     %d\n", sum.Defaulted)
	}
	fmt.Fprintln(os.Stderr)
}
