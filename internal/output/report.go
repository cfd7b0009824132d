package output

import (
	"fmt"
	"os"

	"github.com/rpgo/portfolio-projector/internal/config"
	"github.com/rpgo/portfolio-projector/internal/domain"
)

// GenerateReport writes the comparison to a timestamped file in the named
// format. "all" writes the verbose console report and the detailed CSV.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	if format == "all" {
		if _, err := WriteFormatted(ConsoleVerboseFormatter{}, results, "txt"); err != nil {
			return err
		}
		_, err := WriteFormatted(CSVDetailedExporter{}, results, "csv")
		return err
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	_, err = WriteFormatted(f, results, Extension(format))
	return err
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(cfg *domain.Configuration, filename string) error {
	b, err := config.MarshalConfiguration(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
