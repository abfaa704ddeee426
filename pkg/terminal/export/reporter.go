// Package export renders compliance results as printable text reports for
// the CLI (the web application renders its own preview from the JSON form).
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/safework-tools/swms-atlas/pkg/models/domain"
)

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const reportTemplate = `
SWMS Compliance Report: {{.Trade}} work
{{separator}}

Verdict: {{verdict .Result.IsCompliant}}

  Overall score:          {{.Result.OverallScore}}%
  Risk score accuracy:    {{.Result.RiskScoreAccuracy}}%
  Standards compliance:   {{.Result.StandardsCompliance}}%
  Legislation compliance: {{.Result.LegislationCompliance}}%

{{if .Result.Issues}}Issues ({{len .Result.Issues}}):
{{range .Result.Issues}}  [{{severity .Type}}] {{.Category}}: {{.Message}}
{{if .Resolution}}      -> {{.Resolution}}
{{end}}{{end}}{{else}}No issues found.
{{end}}
{{if .Result.Recommendations}}Recommendations:
{{range .Result.Recommendations}}  - {{.}}
{{end}}{{end}}`

// Handle renders one compliance result for a trade.
func (r *Reporter) Handle(trade string, result domain.ComplianceResult) error {
	funcMap := template.FuncMap{
		"separator": func() string { return strings.Repeat("=", 60) },
		"verdict": func(compliant bool) string {
			if compliant {
				return "COMPLIANT"
			}
			return "NON-COMPLIANT"
		},
		"severity": func(s domain.IssueSeverity) string {
			return strings.ToUpper(string(s))
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		Trade  string
		Result domain.ComplianceResult
	}{Trade: trade, Result: result}

	if err := t.Execute(r.writer, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
