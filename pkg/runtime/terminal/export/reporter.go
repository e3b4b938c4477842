package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/isobench/pkg/models/api"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var Formats = []string{FormatTable, FormatJSON, FormatYAML}

type TableConfig struct {
	MetricWidth     int
	ValueWidth      int
	DifferenceWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MetricWidth:     20,
		ValueWidth:      16,
		DifferenceWidth: 26,
	}
}

// Summary describes where the output of an analyze run went.
type Summary struct {
	OutputFile string
	RunID      string
	Location   string
	Sections   int
	Findings   int
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Handle writes the analysis in the requested format.
func (c *Reporter) Handle(format string, analysis api.Analysis) error {
	switch format {
	case FormatTable, "":
		return c.table(analysis)
	case FormatJSON:
		enc := json.NewEncoder(c.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	case FormatYAML:
		enc := yaml.NewEncoder(c.writer)
		enc.SetIndent(2)
		if err := enc.Encode(analysis); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q. Supported formats: %s", format, strings.Join(Formats, ", "))
	}
}

func (c *Reporter) table(analysis api.Analysis) error {
	funcMap := template.FuncMap{
		"formatRow": func(metric, baseline, candidate, diff string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %-*s |",
				c.config.MetricWidth, metric,
				c.config.ValueWidth, baseline,
				c.config.ValueWidth, candidate,
				c.config.DifferenceWidth, diff)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.MetricWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.DifferenceWidth+2))
		},
		"num": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"diff": func(cmp api.Comparison) string {
			switch cmp.Outcome {
			case "candidate":
				return fmt.Sprintf("candidate +%.1f%%", cmp.Percentage)
			case "baseline":
				return fmt.Sprintf("baseline +%.1f%%", -cmp.Percentage)
			default:
				return "insufficient data"
			}
		},
	}

	tmpl := `
{{.Profiles.Baseline.Name}} (baseline) vs {{.Profiles.Candidate.Name}} (candidate)
{{if .RunID}}Run: {{.RunID}}
{{end}}
{{separator}}
{{formatRow "Metric" .Profiles.Baseline.ShortName .Profiles.Candidate.ShortName "Difference"}}
{{separator}}
{{range .Comparisons}}{{formatRow .Metric (num .Baseline) (num .Candidate) (diff .)}}
{{end}}{{separator}}

=== Findings ===
{{range .Findings}}
- {{.Title}}: {{.Statement}}{{end}}
`

	t, err := template.New("analysis").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, analysis)
}

// HandleSummary prints where an analyze run wrote its results.
func (c *Reporter) HandleSummary(s Summary) error {
	tmpl := `Report written to {{.OutputFile}} ({{.Sections}} sections, {{.Findings}} findings)
{{if .RunID}}Run recorded as {{.RunID}}
{{end}}{{if .Location}}Report published to {{.Location}}
{{end}}`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, s)
}
