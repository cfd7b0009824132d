package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var compareOpts runOptions

// compareCmd runs every configured scenario preset
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the household across all scenario presets",
	Long: `Run the projection once per configured scenario preset, in parallel, and
report the balances, depletion and sustainability of each along with the
best scenario for balance and for longevity.

Examples:
  rpgo-portfolio compare --config household.yaml
  rpgo-portfolio compare --config household.yaml --format csv --output scenarios.csv`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareOpts.addFlags(compareCmd.Flags())
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	cfg, err := compareOpts.loadConfiguration()
	if err != nil {
		return err
	}
	engine, runID := compareOpts.newEngine()

	log.Info().
		Str("command", "compare").
		Str("run_id", runID).
		Strs("scenarios", cfg.ScenarioNames()).
		Msg("comparing scenarios")

	results, err := engine.RunScenarios(ctx, cfg)
	if err != nil {
		return fmt.Errorf("scenario comparison failed: %w", err)
	}
	results.RunID = runID

	return compareOpts.writeReport(cmd, results)
}
