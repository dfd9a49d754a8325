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
	"github.com/psenarath/floodline/internal/sink"
)

var (
	scenariosOut  string
	scenariosRuns int
)

// scenariosCmd represents the scenarios command
var scenariosCmd = &cobra.Command{
	Use:   "scenarios <scenarios.txt>",
	Short: "Stress-test scenario reasoning across temperatures",
	Long: `Scenarios analyzes each crisis scenario with chain-of-thought
reasoning under temperature stress: several runs at temperature 1
followed by one deterministic run at temperature 0, all written to a
single transcript for comparison.

Scenario records start with a line beginning "SCENARIO" and continue
until the next such line. A failed call is recorded as an explicit
sentinel line so run positions stay aligned across temperatures.

Example:
  floodline scenarios scenarios.txt
  floodline scenarios scenarios.txt --out cot_results.txt --runs 3`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)

	scenariosCmd.Flags().StringVar(&scenariosOut, "out", "cot_results.txt", "transcript output path")
	scenariosCmd.Flags().IntVar(&scenariosRuns, "runs", 3, "temperature-1 runs per scenario")
	addLLMFlags(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
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

	scenarios, err := input.ReadScenarios(file)
	if err != nil {
		return &pipeline.FatalConfigError{Reason: "unreadable scenarios file", Cause: err}
	}
	if len(scenarios) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no scenarios found; records must start with \"SCENARIO\".")
	}

	client, err := newClient(cfg, llm.PurposeReason)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	banner("CHAIN-OF-THOUGHT SCENARIO ANALYSIS")
	fmt.Fprintf(os.Stderr, "  Input:     %s (%d scenarios)\n", file, len(scenarios))
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", scenariosOut)

	out, err := sink.NewTranscript(scenariosOut)
	if err != nil {
		return err
	}

	tester := pipeline.NewStressTester(client, cfg.Retry, pipeline.NewZapEvents(log))
	if scenariosRuns > 0 {
		tester.HotRuns = scenariosRuns
	}

	sum, runErr := tester.Run(ctx, scenarios, out)
	if err := out.Close(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("scenario analysis failed: %w", runErr)
	}

	printSummary(sum, scenariosOut)
	return nil
}
