package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/portfolio-projector/internal/calculation"
	"github.com/rpgo/portfolio-projector/internal/config"
	"github.com/rpgo/portfolio-projector/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfig)
	require.NoError(t, err)

	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	for _, format := range []string{"console", "console-lite", "json", "csv", "detailed-csv", "html"} {
		assert.NoError(t, output.GenerateReport(results, format), format)
	}
	files, err := filepath.Glob(filepath.Join(dir, "portfolio_projection_*"))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}

func TestDetailedCSVCoversEveryProjectedYear(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfig)
	require.NoError(t, err)

	results, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	data, err := output.CSVDetailedExporter{}.Format(results)
	require.NoError(t, err)

	years := 0
	for _, s := range results.Scenarios {
		years += len(s.Result.Projections)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, years+1)
}

func TestParameterBagMatchesConfigFile(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfig)
	require.NoError(t, err)

	household, warnings := config.ParseParams(map[string]string{
		config.KeyCurrentAge:       "30",
		config.KeyRetirementAge:    "60",
		config.KeyLifeExpectancy:   "90",
		config.KeyBaseSalary:       "150000",
		config.KeyBonus:            "15000",
		config.KeySalaryGrowth:     "0.03",
		config.KeyTaxableBalance:   "50000",
		config.KeyTraditional401k:  "150000",
		config.KeyRothBalance:      "30000",
		config.KeyHSABalance:       "10000",
		config.KeyCashBalance:      "20000",
		config.KeyTaxableContrib:   "12000",
		config.KeyEmployee401k:     "23000",
		config.KeyEmployer401k:     "10000",
		config.KeyRothContrib:      "6500",
		config.KeyHSAEmployee:      "4000",
		config.KeyHSAEmployer:      "1000",
		config.KeyInvestmentReturn: "0.04",
		config.KeyInflation:        "0.02",
		config.KeyBaseWithdrawal:   "60000",
		config.KeyIndexWithdrawals: "yes",
	})
	require.Empty(t, warnings)
	household.StartYear = 2025

	engine := calculation.NewCalculationEngine()
	fromFile, err := engine.RunScenario(context.Background(), cfg, "")
	require.NoError(t, err)

	cfg.Household = household
	fromBag, err := engine.RunScenario(context.Background(), cfg, "")
	require.NoError(t, err)

	assert.True(t, fromFile.FinalBalance.Equal(fromBag.FinalBalance))
	assert.Equal(t, len(fromFile.Result.Projections), len(fromBag.Result.Projections))
}
