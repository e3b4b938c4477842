package domain

// Outcome is the direction of a comparison as read from the sign of its percentage.
type Outcome int

const (
	OutcomeInconclusive Outcome = iota
	OutcomeCandidateBetter
	OutcomeBaselineBetter
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCandidateBetter:
		return "candidate"
	case OutcomeBaselineBetter:
		return "baseline"
	default:
		return "inconclusive"
	}
}

// ComparisonResult is a directional comparison of one metric. A positive Percentage always
// means the candidate is better, whatever the polarity.
type ComparisonResult struct {
	Metric         MetricName
	Baseline       float64
	Candidate      float64
	HigherIsBetter bool
	Percentage     float64
}

// Degenerate is true when either side carries no usable data.
func (c ComparisonResult) Degenerate() bool {
	return c.Baseline == 0 || c.Candidate == 0
}

func (c ComparisonResult) Outcome() Outcome {
	switch {
	case c.Percentage > 0:
		return OutcomeCandidateBetter
	case c.Percentage < 0:
		return OutcomeBaselineBetter
	default:
		return OutcomeInconclusive
	}
}

// Ratio returns candidate/baseline, or 0 when the baseline is 0.
func (c ComparisonResult) Ratio() float64 {
	if c.Baseline == 0 {
		return 0
	}
	return c.Candidate / c.Baseline
}

// ComparisonSet holds the comparisons of a run keyed by metric.
type ComparisonSet map[MetricName]ComparisonResult

func (s ComparisonSet) Get(name MetricName) ComparisonResult {
	if c, ok := s[name]; ok {
		return c
	}
	return ComparisonResult{Metric: name}
}
