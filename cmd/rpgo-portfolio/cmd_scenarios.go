package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-projector/internal/config"
	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/rpgo/portfolio-projector/internal/output"
)

var scenariosConfigPath string

// scenariosCmd lists the available scenario presets
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List scenario presets",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.Flags().StringVarP(&scenariosConfigPath, "config", "c", "", "configuration file (default: built-in presets)")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg := domain.NewConfiguration(domain.Params{})
	if scenariosConfigPath != "" {
		loaded, err := config.NewInputParser().LoadFromFile(scenariosConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tRETURN\tINFLATION")
	for _, name := range cfg.ScenarioNames() {
		preset := cfg.Scenarios[name]
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, output.FormatPercentage(preset.Return), output.FormatPercentage(preset.Inflation))
	}
	return w.Flush()
}
