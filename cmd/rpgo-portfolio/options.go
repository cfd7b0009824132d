package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rpgo/portfolio-projector/internal/calculation"
	"github.com/rpgo/portfolio-projector/internal/config"
	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/rpgo/portfolio-projector/internal/output"
)

// runOptions are the flags shared by the project and compare commands.
type runOptions struct {
	configPath  string
	format      string
	outputPath  string
	params      map[string]string
	concurrency int
}

func (o *runOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "path to the YAML configuration file")
	fs.StringVarP(&o.format, "format", "f", "console", "output format (console|console-lite|csv|detailed-csv|json|html)")
	fs.StringVarP(&o.outputPath, "output", "o", "", "write the report to this file instead of stdout")
	fs.StringToStringVarP(&o.params, "param", "p", nil, "household parameter as key=value when no config file is given (repeatable)")
	fs.IntVar(&o.concurrency, "concurrency", 4, "maximum scenarios projected in parallel")
}

// loadConfiguration reads the configuration file, or builds one from the
// --param bag with the default presets and tax settings.
func (o *runOptions) loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if o.configPath != "" {
		cfg, err := parser.LoadFromFile(o.configPath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("config", o.configPath).Int("scenarios", len(cfg.Scenarios)).Msg("configuration loaded")
		return cfg, nil
	}
	if len(o.params) == 0 {
		return nil, fmt.Errorf("either --config or at least one --param is required")
	}

	household, warnings := config.ParseParams(o.params)
	for _, w := range warnings {
		log.Warn().Err(w).Msg("parameter ignored")
	}
	cfg := domain.NewConfiguration(household)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}
	return cfg, nil
}

// newEngine builds a calculation engine logging through zerolog under a
// fresh run id.
func (o *runOptions) newEngine() (*calculation.CalculationEngine, string) {
	runID := uuid.New().String()
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(newZerologAdapter(log.Logger, runID))
	engine.SetDebug(debugMode)
	if o.concurrency > 0 {
		engine.MaxConcurrent = o.concurrency
	}
	return engine, runID
}

// writeReport renders the comparison in the requested format to stdout or
// the output file.
func (o *runOptions) writeReport(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	f, err := output.LookupFormatter(o.format)
	if err != nil {
		return err
	}
	if o.outputPath == "" {
		return output.WriteTo(cmd.OutOrStdout(), f, results)
	}

	file, err := os.Create(o.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", o.outputPath, err)
	}
	if err := output.WriteTo(file, f, results); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Info().Str("file", o.outputPath).Str("format", f.Name()).Msg("report written")
	return nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}
