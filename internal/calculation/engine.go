package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/rpgo/portfolio-projector/internal/domain"
)

// HouseholdScenarioName labels a run that uses the household's own
// return and inflation instead of a preset.
const HouseholdScenarioName = "household"

// defaultMaxConcurrentScenarios limits parallel scenario runs.
const defaultMaxConcurrentScenarios = 4

// CalculationEngine orchestrates projection runs across scenarios
type CalculationEngine struct {
	Projection    *ProjectionEngine
	MaxConcurrent int
	Logger        Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Projection:    NewProjectionEngine(),
		MaxConcurrent: defaultMaxConcurrentScenarios,
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger for the engine and its projection engine.
// If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Projection.SetLogger(l)
}

// SetDebug toggles per-year debug output
func (ce *CalculationEngine) SetDebug(debug bool) {
	ce.Projection.Debug = debug
}

// RunScenario projects the household under the named preset. An empty name
// runs the household's own return and inflation assumptions.
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, name string) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := config.Household
	label := name
	if name == "" {
		label = HouseholdScenarioName
	} else {
		preset, err := config.Preset(name)
		if err != nil {
			return nil, err
		}
		params = preset.Apply(params)
	}

	tax := params.ResolveTaxSettings(config.TaxDefaults)
	ce.Logger.Debugf("running scenario %s: return=%s inflation=%s horizon=%d",
		label, params.InvestmentReturn.String(), params.Inflation.String(), params.Horizon())

	result := ce.Projection.Run(params, tax)
	summary := Summarize(label, params, result)
	return &summary, nil
}

// RunScenarios runs every configured preset in parallel and returns the
// comparison in configuration order. Each run owns its own account state,
// so no coordination is needed beyond collecting results.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	names := config.ScenarioNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("no scenarios configured")
	}

	limit := ce.MaxConcurrent
	if limit <= 0 {
		limit = defaultMaxConcurrentScenarios
	}

	summaries := make([]domain.ScenarioSummary, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, limit)

	for i, name := range names {
		wg.Add(1)
		go func(idx int, scenarioName string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			summary, err := ce.RunScenario(ctx, config, scenarioName)
			if err != nil {
				errs[idx] = fmt.Errorf("scenario %s: %w", scenarioName, err)
				return
			}
			summaries[idx] = *summary
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	comparison := newComparison(config, summaries)
	ce.Logger.Infof("compared %d scenarios: best balance=%s best longevity=%s",
		len(summaries), comparison.BestScenarioForBalance, comparison.BestScenarioForLongevity)

	return comparison, nil
}

// Project runs a single scenario and wraps it in a one-entry comparison so
// it can be rendered by the same formatters as RunScenarios.
func (ce *CalculationEngine) Project(ctx context.Context, config *domain.Configuration, name string) (*domain.ScenarioComparison, error) {
	summary, err := ce.RunScenario(ctx, config, name)
	if err != nil {
		return nil, err
	}
	return newComparison(config, []domain.ScenarioSummary{*summary}), nil
}

func newComparison(config *domain.Configuration, summaries []domain.ScenarioSummary) *domain.ScenarioComparison {
	tax := config.Household.ResolveTaxSettings(config.TaxDefaults)
	comparison := &domain.ScenarioComparison{
		Household:   config.Household,
		TaxSettings: tax,
		Scenarios:   summaries,
		Assumptions: config.Household.GenerateAssumptions(tax),
	}
	comparison.BestScenarioForBalance, comparison.BestScenarioForLongevity = generateLongTermAnalysis(summaries)
	return comparison
}
