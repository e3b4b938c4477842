// Package compare computes directional improvement percentages between the baseline and
// the candidate technology.
package compare

import "github.com/de-tools/isobench/pkg/models/domain"

// Compare returns the improvement of candidate over baseline in percent. A positive result
// always means the candidate is better. When either value is 0 the percentage is 0, so a
// missing measurement never shows up as a ±100% swing.
func Compare(baseline, candidate float64, higherIsBetter bool) domain.ComparisonResult {
	res := domain.ComparisonResult{
		Baseline:       baseline,
		Candidate:      candidate,
		HigherIsBetter: higherIsBetter,
	}
	if baseline == 0 || candidate == 0 {
		return res
	}

	if higherIsBetter {
		res.Percentage = (candidate - baseline) / baseline * 100
	} else {
		res.Percentage = (baseline - candidate) / baseline * 100
	}
	return res
}

// Polarity lists the comparable metrics in report order with their higher-is-better flag.
var Polarity = []struct {
	Metric         domain.MetricName
	HigherIsBetter bool
}{
	{domain.MetricStartupTime, false},
	{domain.MetricMemoryMB, false},
	{domain.MetricDiskBytes, false},
	{domain.MetricQPS, true},
	{domain.MetricAvgResponseTime, false},
	{domain.MetricFailedRequests, false},
	{domain.MetricTransferRate, true},
}

// Profiles compares every comparable metric of the two profiles.
func Profiles(p domain.Profiles) domain.ComparisonSet {
	set := make(domain.ComparisonSet, len(Polarity))
	for _, m := range Polarity {
		c := Compare(p.Baseline.Value(m.Metric), p.Candidate.Value(m.Metric), m.HigherIsBetter)
		c.Metric = m.Metric
		set[m.Metric] = c
	}
	return set
}
