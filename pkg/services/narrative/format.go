package narrative

import (
	"fmt"
	"math"
	"strings"

	"github.com/de-tools/isobench/pkg/models/domain"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with binary multiples and two decimals.
func FormatBytes(v float64) string {
	for _, unit := range byteUnits {
		if math.Abs(v) < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f PB", v)
}

// phrasing holds the three mutually exclusive renderings of one comparison.
type phrasing struct {
	candidate    string // format taking the absolute percentage
	baseline     string // format taking the absolute percentage
	insufficient string
}

func (p phrasing) render(c domain.ComparisonResult) string {
	switch c.Outcome() {
	case domain.OutcomeCandidateBetter:
		return fmt.Sprintf(p.candidate, math.Abs(c.Percentage))
	case domain.OutcomeBaselineBetter:
		return fmt.Sprintf(p.baseline, math.Abs(c.Percentage))
	default:
		return p.insufficient
	}
}

const insufficientCell = "Insufficient data to compare"

// section accumulates the fragments of one report section.
type section struct {
	domain.ReportSection
}

func newSection(id domain.SectionID) *section {
	return &section{domain.ReportSection{ID: id}}
}

func (s *section) add(format string, args ...any) {
	if len(args) == 0 {
		s.Fragments = append(s.Fragments, format)
		return
	}
	s.Fragments = append(s.Fragments, fmt.Sprintf(format, args...))
}

func (s *section) tableHeader(in Input) {
	s.add("| Metric | %s | %s | Difference |\n", escapeCell(in.baseline().Name), escapeCell(in.candidate().Name))
	s.add("|------|----------|--------|------|\n")
}

// escapeCell keeps user-supplied names from breaking a markdown table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
