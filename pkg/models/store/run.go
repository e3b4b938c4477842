package store

import "time"

// Run is one recorded execution of the report pipeline.
type Run struct {
	ID             string
	GeneratedAt    time.Time
	BaselineName   string
	BaselineShort  string
	CandidateName  string
	CandidateShort string
}

type MetricRecord struct {
	RunID  string
	Role   string
	Metric string
	Value  float64
	Unit   string
}

type AttributeRecord struct {
	RunID string
	Role  string
	Key   string
	Value string
}
