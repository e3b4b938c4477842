package adapters

import (
	"strings"

	"github.com/de-tools/isobench/pkg/models/api"
	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/models/store"
	"github.com/de-tools/isobench/pkg/services/compare"
)

func MapDomainProfileToApi(p domain.TechnologyProfile) api.Profile {
	metrics := make(map[string]api.MetricValue, len(p.Metrics))
	for name, v := range p.Metrics {
		if !v.Present {
			continue
		}
		metrics[string(name)] = api.MetricValue{Value: v.Value, Unit: v.Unit.Name()}
	}
	var attrs map[string]string
	if len(p.Attributes) > 0 {
		attrs = make(map[string]string, len(p.Attributes))
		for k, v := range p.Attributes {
			attrs[k] = v
		}
	}
	return api.Profile{
		Role:       string(p.Technology.Role),
		Name:       p.Technology.Name,
		ShortName:  p.Technology.ShortName,
		Metrics:    metrics,
		Attributes: attrs,
	}
}

func MapDomainProfilesToApi(p domain.Profiles) api.Profiles {
	return api.Profiles{
		Baseline:  MapDomainProfileToApi(p.Baseline),
		Candidate: MapDomainProfileToApi(p.Candidate),
	}
}

// MapDomainComparisonsToApi lists the comparisons in report order.
func MapDomainComparisonsToApi(set domain.ComparisonSet) []api.Comparison {
	out := make([]api.Comparison, 0, len(set))
	for _, m := range compare.Polarity {
		c, ok := set[m.Metric]
		if !ok {
			continue
		}
		out = append(out, api.Comparison{
			Metric:         string(c.Metric),
			Baseline:       c.Baseline,
			Candidate:      c.Candidate,
			HigherIsBetter: c.HigherIsBetter,
			Percentage:     c.Percentage,
			Outcome:        c.Outcome().String(),
		})
	}
	return out
}

func MapDomainFindingsToApi(findings []domain.Finding) []api.Finding {
	out := make([]api.Finding, 0, len(findings))
	for _, f := range findings {
		out = append(out, api.Finding{
			Metric:     string(f.Metric),
			Title:      f.Title,
			Outcome:    f.Outcome.String(),
			Percentage: f.Percentage,
			Statement:  f.Statement,
			Derived:    f.Derived,
		})
	}
	return out
}

func MapDomainReportToApi(r domain.Report) api.Report {
	sections := make([]api.Section, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, api.Section{ID: string(s.ID), Markdown: strings.Join(s.Fragments, "")})
	}
	return api.Report{
		Title:     r.Title,
		Generated: r.Generated,
		Sections:  sections,
		Findings:  MapDomainFindingsToApi(r.Findings),
	}
}

func MapStoreRunToApi(r store.Run) api.Run {
	return api.Run{
		ID:          r.ID,
		GeneratedAt: r.GeneratedAt,
		Baseline:    r.BaselineName,
		Candidate:   r.CandidateName,
	}
}
