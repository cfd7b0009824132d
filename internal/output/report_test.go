package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/portfolio-projector/internal/config"
	"github.com/rpgo/portfolio-projector/internal/domain"
	"github.com/rpgo/portfolio-projector/internal/output"
)

func TestSaveConfiguration(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := output.SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	loaded, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		t.Fatalf("reload saved configuration: %v", err)
	}
	if loaded.Household.RetirementAge != cfg.Household.RetirementAge {
		t.Fatalf("retirement age not preserved")
	}
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	sc := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{{Name: "Baseline"}},
	}
	for _, format := range []string{"json", "csv", "all"} {
		if err := output.GenerateReport(sc, format); err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "portfolio_projection_*"))
	if len(matches) == 0 {
		t.Fatalf("expected report files in %s", dir)
	}
}
