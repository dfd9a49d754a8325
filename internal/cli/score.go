package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/psenarath/floodline/internal/input"
	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/model"
	"github.com/psenarath/floodline/internal/pipeline"
	"github.com/psenarath/floodline/internal/sink"
)

var scoreOut string

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score <incidents.csv>",
	Short: "Score incident severity with chain-of-thought reasoning",
	Long: `Score reads a tabular incident source and assigns each incident a
severity score from 0 to 15 in two stages: a reasoning model applies
the scoring criteria, then a general model extracts the number.

Every incident gets a record. When no score can be extracted the
neutral default of 5 is substituted, because downstream planning needs
a score for every incident.

Required columns: ID, Area, Time, People, Ages, Main Need, Message.
Missing columns degrade to N/A placeholders with a warning.

Example:
  floodline score incidents.csv
  floodline score incidents.csv --out incident_scores.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreOut, "out", "incident_scores.csv", "output path (.xlsx or .csv)")
	scoreCmd.Flags().StringVar(&dedupColumn, "dedup-column", "", "column used to skip rows already in the destination")
	addLLMFlags(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, sum, err := scoreIncidents(ctx, file)
	if err != nil {
		return err
	}

	rows := make([]sink.Row, len(records))
	for i, rec := range records {
		rows[i] = pipeline.ScoreRow(rec)
	}

	dest := scoreOut
	if sum.Interrupted {
		dest = sink.PartialPath(scoreOut)
	}
	out := sinkForPath(dest, pipeline.ScoreColumns, resolveDedupColumn())
	if err := out.Append(rows); err != nil {
		return fmt.Errorf("persist scores: %w", err)
	}

	printSummary(sum, dest)
	return nil
}

// scoreIncidents runs the scoring pipeline over the incident file; it
// is shared with the commander command.
func scoreIncidents(ctx context.Context, file string) ([]model.ScoreRecord, pipeline.Summary, error) {
	if err := requireInput(file); err != nil {
		return nil, pipeline.Summary{}, err
	}

	cfg, err := buildConfig()
	if err != nil {
		return nil, pipeline.Summary{}, err
	}

	incidents, warnings, err := input.ReadIncidents(file)
	if err != nil {
		return nil, pipeline.Summary{}, &pipeline.FatalConfigError{Reason: "unreadable incident source", Cause: err}
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	reasoning, err := newClient(cfg, llm.PurposeReason)
	if err != nil {
		return nil, pipeline.Summary{}, err
	}
	general, err := newClient(cfg, llm.PurposeGeneral)
	if err != nil {
		return nil, pipeline.Summary{}, err
	}

	log, err := newLogger()
	if err != nil {
		return nil, pipeline.Summary{}, err
	}
	defer func() { _ = log.Sync() }()

	banner("INCIDENT SCORING PROCESS")
	fmt.Fprintf(os.Stderr, "  Input:     %s (%d incidents)\n", file, len(incidents))

	scorer := pipeline.NewScorer(reasoning, general, cfg.Retry, pipeline.NewZapEvents(log))
	records, sum, err := scorer.Run(ctx, incidents)
	if err != nil {
		return nil, sum, fmt.Errorf("scoring failed: %w", err)
	}
	return records, sum, nil
}
