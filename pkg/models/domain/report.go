package domain

import "time"

// Report represents a complete comparison report
type Report struct {
	Title     string
	Generated time.Time
	Sections  []ReportSection
	Findings  []Finding
}

type SectionID string

const (
	SectionHeader      SectionID = "header"
	SectionSummary     SectionID = "summary"
	SectionEnvironment SectionID = "environment"
	SectionPerformance SectionID = "performance"
	SectionStartup     SectionID = "performance.startup"
	SectionMemory      SectionID = "performance.memory"
	SectionDisk        SectionID = "performance.disk"
	SectionThroughput  SectionID = "performance.throughput"
	SectionIsolation   SectionID = "isolation"
	SectionFindings    SectionID = "findings"
	SectionScenarios   SectionID = "scenarios"
	SectionElasticity  SectionID = "elasticity"
	SectionConclusion  SectionID = "conclusion"
	SectionFooter      SectionID = "footer"
)

// ReportSection represents a logical section in the report
type ReportSection struct {
	ID        SectionID
	Fragments []string
}

// Section returns the section with the given id.
func (r Report) Section(id SectionID) (ReportSection, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return ReportSection{}, false
}
