package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/psenarath/floodline/internal/input"
	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/pipeline"
	"github.com/psenarath/floodline/internal/sink"
)

var (
	eventsOut      string
	eventsInterval time.Duration
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events <newsfeed.txt>",
	Short: "Extract validated crisis events from a news feed",
	Long: `Events reads news feed items (one per line) and extracts a structured
crisis event from each: district, flood level, victim count, main need
and status.

A response must be well-formed JSON within the retry budget; responses
that parse but break the declared schema (unknown district, status
outside {Critical, Warning, Stable}, negative counts) are reported with
the offending field and skipped. Records are flushed to the destination
on completion, or to a "_partial" destination when interrupted.

Example:
  floodline events newsfeed.txt
  floodline events newsfeed.txt --out flood_report.xlsx --interval 6s`,
	Args: cobra.ExactArgs(1),
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventsOut, "out", "flood_report.xlsx", "output path (.xlsx or .csv)")
	eventsCmd.Flags().DurationVar(&eventsInterval, "interval", 6*time.Second, "minimum spacing between extraction calls")
	eventsCmd.Flags().StringVar(&dedupColumn, "dedup-column", "", "column used to skip rows already in the destination")
	addLLMFlags(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
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
	cfg.RateLimit.Interval = eventsInterval

	lines, err := input.ReadLines(file)
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

	banner("CRISIS EVENT EXTRACTION PIPELINE")
	fmt.Fprintf(os.Stderr, "  Input:     %s (%d items)\n", file, len(lines))
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", eventsOut)
	fmt.Fprintf(os.Stderr, "  Interval:  %v\n", eventsInterval)

	out := sinkForPath(eventsOut, pipeline.EventColumns, cfg.Output.DedupColumn)
	partial := sinkForPath(sink.PartialPath(eventsOut), pipeline.EventColumns, cfg.Output.DedupColumn)
	extractor := pipeline.NewExtractor(client, cfg.Retry, cfg.RateLimit, out, partial, pipeline.NewZapEvents(log))

	sum, err := extractor.Run(ctx, lines)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	dest := eventsOut
	if sum.Interrupted {
		dest = sink.PartialPath(eventsOut)
	}
	printSummary(sum, dest)
	return nil
}
