// Package render prints the volatility analysis as a sectioned console
// report.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"stockvol/internal/analyzer"
	"stockvol/internal/model"
)

// reportWidth is the width of the section rules.
const reportWidth = 80

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Handle writes the full report for one analysis. The layout is fixed:
// a header block, the five-day table with the standout day marked, and
// the one-sentence summary.
func (r *Reporter) Handle(a *model.Analysis) error {
	funcMap := template.FuncMap{
		"thickRule": func() string {
			return strings.Repeat("=", reportWidth)
		},
		"thinRule": func() string {
			return strings.Repeat("-", reportWidth)
		},
		"header": func() string {
			return fmt.Sprintf("%-12s %15s %15s %15s", "Date", "Closing Price", "Daily Change", "Status")
		},
		"row": func(c model.DailyChange) string {
			status := string(c.Tier)
			if c.Date == a.MostVolatile.Date {
				status += " *"
			}
			return fmt.Sprintf("%-12s $%14.2f %15s %15s",
				c.Date, c.Close, fmt.Sprintf("%+.2f%%", c.ChangePct), status)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%+.2f%%", v)
		},
		"summary": func() string {
			return analyzer.Summarize(a)
		},
	}

	tmpl := `
{{thickRule}}
STOCK VOLATILITY ANALYSIS
{{thickRule}}
Stock Symbol: {{.Symbol}}
Analysis Period: {{.PeriodStart}} to {{.PeriodEnd}}

Current Price: ${{printf "%.2f" .CurrentPrice}}
Average Absolute Daily Change: {{printf "%.2f" .AvgAbsChange}}%
Overall Volatility Level: {{.OverallTier}}

{{thinRule}}
5-DAY TRADING HISTORY
{{thinRule}}
{{header}}
{{thinRule}}
{{range .Changes}}{{row .}}
{{end}}{{thinRule}}

Most Volatile Day: {{.MostVolatile.Date}} ({{pct .MostVolatile.ChangePct}})

{{thickRule}}
SUMMARY
{{thickRule}}
{{summary}}
{{thickRule}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, a)
}
