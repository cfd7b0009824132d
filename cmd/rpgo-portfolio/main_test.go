package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExampleThenCompare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "household.yaml")

	_, err := execute(t, "example", "--output", path)
	require.NoError(t, err)

	out, err := execute(t, "compare", "--config", path, "--format", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "conservative", rows[1][0])
	assert.Equal(t, "custom", rows[4][0])
}

func TestProjectFromParams(t *testing.T) {
	out, err := execute(t, "project",
		"-p", "currentAge=65",
		"-p", "retirementAge=65",
		"-p", "lifeExpectancy=90",
		"-p", "cashBalance=100000",
		"-p", "baseWithdrawal=30000",
		"-p", "investmentReturn=0",
		"-p", "inflation=0",
		"--format", "json")
	require.NoError(t, err)

	var decoded struct {
		RunID     string `json:"run_id"`
		Scenarios []struct {
			Name         string `json:"name"`
			DepletionAge *int   `json:"depletion_age"`
			YearsFunded  int    `json:"years_sustainable"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.RunID, 36)
	require.Len(t, decoded.Scenarios, 1)
	assert.Equal(t, "household", decoded.Scenarios[0].Name)
	require.NotNil(t, decoded.Scenarios[0].DepletionAge)
	assert.Equal(t, 68, *decoded.Scenarios[0].DepletionAge)
	assert.Equal(t, 3, decoded.Scenarios[0].YearsFunded)
}

func TestScenariosListsDefaults(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "SCENARIO")
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "8.00%")
}

func TestCompareRequiresInput(t *testing.T) {
	_, err := execute(t, "compare", "--config", "", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--config")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "scenarios", "--log-level", "loud")
	assert.Error(t, err)
	_, err = execute(t, "scenarios", "--log-level", "info")
	assert.NoError(t, err)
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := newZerologAdapter(zerolog.New(&buf), "run-123")
	adapter.Infof("compared %d scenarios", 4)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "run-123", entry["run_id"])
	assert.Equal(t, "compared 4 scenarios", entry["message"])
}
