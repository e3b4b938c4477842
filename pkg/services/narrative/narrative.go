// Package narrative assembles the markdown comparison report from resolved profiles,
// comparisons and findings.
package narrative

import (
	"strings"
	"time"

	"github.com/de-tools/isobench/pkg/models/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// Input is everything the report is derived from.
type Input struct {
	Title       string
	Generated   time.Time
	Testbed     domain.Testbed
	Profiles    domain.Profiles
	Comparisons domain.ComparisonSet
	Findings    []domain.Finding
}

func (in Input) baseline() domain.Technology  { return in.Profiles.Baseline.Technology }
func (in Input) candidate() domain.Technology { return in.Profiles.Candidate.Technology }

// Builder produces one section. ok is false when the section does not apply to the input.
type Builder func(in Input) (sec domain.ReportSection, ok bool)

// Sections is the fixed order of the report.
var Sections = []Builder{
	header,
	summary,
	environment,
	performance,
	startup,
	memory,
	disk,
	throughput,
	isolation,
	keyFindings,
	scenarios,
	elasticity,
	conclusion,
	footer,
}

// Synthesize runs every section builder in order. It never fails: missing data degrades
// into explicit "insufficient data" sentences.
func Synthesize(in Input) domain.Report {
	report := domain.Report{
		Title:     in.Title,
		Generated: in.Generated,
		Findings:  in.Findings,
	}
	for _, build := range Sections {
		if sec, ok := build(in); ok {
			report.Sections = append(report.Sections, sec)
		}
	}
	return report
}

// Render concatenates the section fragments into the final document.
func Render(report domain.Report) string {
	var b strings.Builder
	for _, sec := range report.Sections {
		for _, f := range sec.Fragments {
			b.WriteString(f)
		}
	}
	return b.String()
}
