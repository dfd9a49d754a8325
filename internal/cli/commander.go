package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/psenarath/floodline/internal/llm"
	"github.com/psenarath/floodline/internal/pipeline"
)

// commanderCmd represents the commander command
var commanderCmd = &cobra.Command{
	Use:   "commander <incidents.csv>",
	Short: "Score incidents and plan the optimal rescue route",
	Long: `Commander orchestrates rescue logistics in two phases:

Phase 1 scores every incident with chain-of-thought reasoning (same as
the score command).
Phase 2 explores three Tree-of-Thought strategy branches over the
scores - descending severity, closest first, furthest first - and
commits to the optimal route.

Example:
  floodline commander incidents.csv
  floodline commander incidents.csv --llm-provider ollama`,
	Args: cobra.ExactArgs(1),
	RunE: runCommander,
}

func init() {
	rootCmd.AddCommand(commanderCmd)
	addLLMFlags(commanderCmd)
}

func runCommander(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Phase 1: incident scoring
	records, sum, err := scoreIncidents(ctx, args[0])
	if err != nil {
		return err
	}
	if sum.Interrupted {
		printSummary(sum, "")
		return nil
	}
	if len(records) == 0 {
		return fmt.Errorf("no scores generated, cannot proceed with planning")
	}

	// Phase 2: strategic planning
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	reasoning, err := newClient(cfg, llm.PurposeReason)
	if err != nil {
		return err
	}

	banner("PHASE 2: STRATEGIC PLANNING (Tree-of-Thought)")
	fmt.Fprintf(os.Stderr, "  Planning route for %d incidents...\n", len(records))

	commander := pipeline.NewCommander(reasoning, cfg.Retry, nil)
	plan, err := commander.Plan(ctx, records)
	if err != nil {
		return fmt.Errorf("strategic planning failed: %w", err)
	}

	banner("STRATEGIC ASSESSMENT RESULT")
	fmt.Println(plan)
	banner("PLANNING COMPLETE")

	printSummary(sum, "")
	return nil
}
