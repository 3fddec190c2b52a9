package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/NBR-24/PothuHole/pkg/models/domain"
)

// Reporter outputs report views to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) PrintSummary(summary domain.Summary) error {
	tmpl := `
District Leaderboard
Total Reports: {{.TotalReports}}  Districts: {{.TotalDistricts}}  Avg Danger: {{printf "%.1f" .AvgDangerLevel}}

{{range $i, $d := .Leaderboard}}{{printf "%2d" (inc $i)}}. {{$d.District}}: {{$d.Count}} report(s), avg danger {{printf "%.1f" $d.AvgDanger}}
{{else}}No reports yet.
{{end}}`
	t, err := template.New("summary").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}

func (c *Reporter) PrintPage(page domain.ReportPage) error {
	tmpl := `
Reports (page {{.Page}} of {{.TotalPages}}, {{.TotalItems}} total)

{{range .Items}}[{{.CreatedAt.Format "2006-01-02 15:04"}}] danger {{.DangerLevel}}/10 in {{.Location.District}}
  {{if .Description}}{{.Description}}{{else}}(no description){{end}}
  {{.Location.FormattedAddress}}
{{else}}No reports match the given criteria.
{{end}}`
	t, err := template.New("page").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, page)
}
