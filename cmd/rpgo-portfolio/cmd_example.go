package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-projector/internal/config"
	"github.com/rpgo/portfolio-projector/internal/output"
)

var exampleOutputPath string

// exampleCmd writes a starter configuration
var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewInputParser().CreateExampleConfiguration()
		if err := output.SaveConfiguration(cfg, exampleOutputPath); err != nil {
			return err
		}
		log.Info().Str("file", exampleOutputPath).Msg("example configuration written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().StringVarP(&exampleOutputPath, "output", "o", "example_config.yaml", "where to write the configuration")
}
