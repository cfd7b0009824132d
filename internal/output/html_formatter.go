package output

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/rpgo/portfolio-projector/internal/domain"
	money "github.com/rpgo/portfolio-projector/pkg/decimal"
)

// HTMLFormatter produces a standalone HTML report with the scenario
// summary, assumptions and per-year balances.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

const htmlTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Portfolio Projection</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
.depleted { color: #b00; }
</style>
</head>
<body>
<h1>Portfolio Projection</h1>
{{if .RunID}}<p>Run {{.RunID}}</p>{{end}}
<h2>Key Assumptions</h2>
<ul>
{{range .Assumptions}}<li>{{.}}</li>
{{end}}</ul>
<h2>Scenario Summary</h2>
<table>
<tr><th>Scenario</th><th>Return</th><th>Inflation</th><th>At Retirement</th><th>At Life Expectancy</th><th>Depletion</th><th>Years Sustainable</th><th>Total Taxes</th></tr>
{{range .Scenarios}}<tr{{if not .Sustainable}} class="depleted"{{end}}><td>{{.Name}}</td><td>{{pct .Return}}</td><td>{{pct .Inflation}}</td><td>{{curr .RetirementBalance}}</td><td>{{curr .EndBalance}}</td><td>{{depletion .DepletionYear}}</td><td>{{.YearsSustainable}}</td><td>{{curr .TotalTaxes}}</td></tr>
{{end}}</table>
{{if .Recommendation.ScenarioName}}<p>Recommended: <strong>{{.Recommendation.ScenarioName}}</strong> funds {{.Recommendation.YearsSustainable}} years of retirement.</p>{{end}}
{{range .Scenarios}}
<h2>{{.Name}}</h2>
<table>
<tr><th>Year</th><th>Age</th><th>Withdrawn</th><th>Taxes</th><th>End Balance</th><th>Real Balance</th></tr>
{{range .Result.Projections}}<tr{{if .Depleted}} class="depleted"{{end}}><td>{{.Year}}</td><td>{{.Age}}</td><td>{{curr .TotalWithdrawn}}</td><td>{{curr .TotalTaxes}}</td><td>{{curr .EndBalance}}</td><td>{{curr .EndBalanceReal}}</td></tr>
{{end}}</table>
{{end}}
<script type="application/json" id="chart-data">{{json .ChartData}}</script>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"pct":       FormatPercentage,
	"depletion": FormatDepletion,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-scenario balance series embedded for charting.
type chartSeries struct {
	Name     string   `json:"name"`
	Ages     []int    `json:"ages"`
	Balances []float64 `json:"balances"`
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	series := make([]chartSeries, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		s := chartSeries{Name: sc.Name}
		for _, y := range sc.Result.Projections {
			s.Ages = append(s.Ages, y.Age)
			s.Balances = append(s.Balances, money.Round(y.EndBalance).InexactFloat64())
		}
		series = append(series, s)
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		ChartData      []chartSeries
	}{results, AnalyzeScenarios(results), assumptionsFor(results), series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
