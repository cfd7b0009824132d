package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	projectOpts     runOptions
	projectScenario string
)

// projectCmd runs a single projection
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the household portfolio under one scenario",
	Long: `Project the household portfolio year by year until life expectancy, the
projection horizon or depletion. Without --scenario the household's own
return and inflation are used.

Examples:
  rpgo-portfolio project --config household.yaml
  rpgo-portfolio project --config household.yaml --scenario aggressive --format detailed-csv -o out.csv
  rpgo-portfolio project -p currentAge=40 -p retirementAge=65 -p rothBalance=200000 -p baseWithdrawal=40000`,
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectOpts.addFlags(projectCmd.Flags())
	projectCmd.Flags().StringVarP(&projectScenario, "scenario", "s", "", "scenario preset to apply (default: household assumptions)")
}

func runProject(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	cfg, err := projectOpts.loadConfiguration()
	if err != nil {
		return err
	}
	engine, runID := projectOpts.newEngine()

	log.Info().
		Str("command", "project").
		Str("run_id", runID).
		Str("scenario", projectScenario).
		Str("format", projectOpts.format).
		Msg("starting projection")

	results, err := engine.Project(ctx, cfg, projectScenario)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}
	results.RunID = runID

	return projectOpts.writeReport(cmd, results)
}
