// Package findings turns comparisons into the key findings of a report.
package findings

import (
	"fmt"
	"math"

	"github.com/de-tools/isobench/pkg/models/domain"
)

type rule struct {
	metric domain.MetricName
	title  string
	// candidate and baseline are format strings taking (candidate, percent, baseline).
	candidate string
	baseline  string
}

// rules are evaluated in this order, which is the order findings appear in.
var rules = []rule{
	{
		metric:    domain.MetricStartupTime,
		title:     "Startup speed",
		candidate: "%s starts %.1f%% faster than %s, which suits workloads that need rapid elastic scaling",
		baseline:  "%s takes %.1f%% longer to start than %s",
	},
	{
		metric:    domain.MetricMemoryMB,
		title:     "Resource efficiency",
		candidate: "%s uses %.1f%% less memory than %s, so more instances fit on the same hardware",
		baseline:  "%s uses %.1f%% more memory than %s",
	},
	{
		metric:    domain.MetricDiskBytes,
		title:     "Storage efficiency",
		candidate: "%s occupies %.1f%% less disk than %s, which lowers storage cost",
		baseline:  "%s occupies %.1f%% more disk than %s",
	},
	{
		metric:    domain.MetricQPS,
		title:     "Concurrency",
		candidate: "%s serves %.1f%% more requests per second than %s, which suits high-concurrency web applications",
		baseline:  "%s serves %.1f%% fewer requests per second than %s",
	},
}

// Extract returns one finding per comparison with a definite direction, followed by the
// two trade-off findings that do not depend on measurements.
func Extract(set domain.ComparisonSet, baseline, candidate domain.Technology) []domain.Finding {
	var out []domain.Finding

	for _, r := range rules {
		c := set.Get(r.metric)
		if c.Degenerate() || c.Baseline == c.Candidate {
			continue
		}

		f := domain.Finding{
			Metric:     r.metric,
			Title:      r.title,
			Outcome:    c.Outcome(),
			Percentage: c.Percentage,
			Derived:    true,
		}
		pct := math.Abs(c.Percentage)
		switch f.Outcome {
		case domain.OutcomeCandidateBetter:
			f.Statement = fmt.Sprintf(r.candidate, candidate.ShortName, pct, baseline.ShortName)
		case domain.OutcomeBaselineBetter:
			f.Statement = fmt.Sprintf(r.baseline, candidate.ShortName, pct, baseline.ShortName)
		default:
			continue
		}
		out = append(out, f)
	}

	return append(out, constants(baseline, candidate)...)
}

func constants(baseline, candidate domain.Technology) []domain.Finding {
	return []domain.Finding{
		{
			Title: "Isolation",
			Statement: fmt.Sprintf("%s provides stronger isolation and suits multi-tenant and security-sensitive environments",
				baseline.ShortName),
		},
		{
			Title: "Flexibility",
			Statement: fmt.Sprintf("%s can run different operating systems, while %s fits microservices and DevOps workflows",
				baseline.ShortName, candidate.ShortName),
		},
	}
}
