package domain

// Finding is a single qualitative statement of the key-findings section.
type Finding struct {
	Metric     MetricName // empty for constant findings
	Title      string
	Outcome    Outcome
	Percentage float64
	Statement  string
	Derived    bool // false for domain-knowledge findings that do not depend on data
}
