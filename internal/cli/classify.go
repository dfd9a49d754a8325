package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/psenarath/floodline/internal/input"
	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/pipeline"
)

var classifyOut string

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <messages.txt>",
	Short: "Classify crisis messages into district, intent and priority",
	Long: `Classify reads free-text messages (one per line) and labels each
with a district, an intent from {Info, Rescue, Supply, Other, None} and
a priority from {High, Low, None}.

Each model response must match the labeled pattern
"District: ... | Intent: ... | Priority: ..." before it is trusted;
non-conforming responses are retried within the attempt budget and the
item is skipped when the budget is exhausted.

Example:
  floodline classify messages.txt
  floodline classify messages.txt --out classified_messages.xlsx
  floodline classify messages.txt --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&classifyOut, "out", "classified_messages.xlsx", "output path (.xlsx or .csv)")
	classifyCmd.Flags().StringVar(&dedupColumn, "dedup-column", "", "column used to skip rows already in the destination")
	addLLMFlags(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := requireInput(file); err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	messages, err := input.ReadMessages(file)
	if err != nil {
		return &pipeline.FatalConfigError{Reason: "unreadable input source", Cause: err}
	}

	client, err := newClient(cfg, llm.PurposeGeneral)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	banner("MESSAGE CLASSIFICATION PIPELINE")
	fmt.Fprintf(os.Stderr, "  Input:     %s (%d messages)\n", file, len(messages))
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", classifyOut)

	out := sinkForPath(classifyOut, pipeline.ClassificationColumns, cfg.Output.DedupColumn)
	classifier := pipeline.NewClassifier(client, cfg.Retry, out, pipeline.NewZapEvents(log))

	sum, err := classifier.Run(ctx, messages)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	printSummary(sum, classifyOut)
	return nil
}
