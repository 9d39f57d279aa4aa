package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/biz-pulse/pkg/models/domain"
)

// Reporter renders health check reports to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report domain.Report) error {
	tmpl := `Daily Business Health Check
Profit status: {{.ProfitStatus}}

Alerts:{{if .Alerts}}{{range .Alerts}}
  - {{.}}{{end}}{{else}} none{{end}}

Recommendations:{{if .Recommendations}}{{range .Recommendations}}
  - {{.}}{{end}}{{else}} none{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
