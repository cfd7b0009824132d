package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/portfolio-projector/internal/domain"
)

// ErrUnsupportedFormat is returned for format names no formatter handles.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter renders a scenario comparison. Format must not mutate results.
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	Name() string
}

// FormatterFunc lets a plain function serve as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.ScenarioComparison) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.ScenarioComparison) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                        { return ff.ID }

// formatters maps canonical names to the built-in formatters.
var formatters = map[string]Formatter{}

// formatAliases maps alternative spellings to canonical names.
var formatAliases = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"table":           "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

func init() {
	for _, f := range []Formatter{
		ConsoleVerboseFormatter{},
		ConsoleFormatter{},
		CSVSummarizer{},
		CSVDetailedExporter{},
		JSONFormatter{},
		HTMLFormatter{},
	} {
		formatters[f.Name()] = f
	}
}

// canonicalFormat folds case and whitespace and resolves aliases.
func canonicalFormat(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if target, ok := formatAliases[n]; ok {
		return target
	}
	return n
}

// GetFormatterByName returns the formatter for a name or alias, or nil.
func GetFormatterByName(name string) Formatter {
	return formatters[canonicalFormat(name)]
}

// LookupFormatter is GetFormatterByName with an error listing the
// available formats when the name is unknown.
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(sortedKeys(formatters), ", "), strings.Join(sortedKeys(formatAliases), ", "))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension used when saving a format.
func Extension(name string) string {
	switch n := canonicalFormat(name); n {
	case "csv", "detailed-csv":
		return "csv"
	case "json", "html":
		return n
	default:
		return "txt"
	}
}

// WriteTo runs a formatter and copies its output to w.
func WriteTo(w io.Writer, f Formatter, results *domain.ScenarioComparison) error {
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted renders results into portfolio_projection_<timestamp>.<ext>
// in the working directory and returns the file name.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("portfolio_projection_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
