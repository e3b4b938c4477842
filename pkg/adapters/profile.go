package adapters

import (
	"sort"
	"time"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/models/store"
)

func MapDomainProfilesToStoreRun(id string, generated time.Time, p domain.Profiles) store.Run {
	return store.Run{
		ID:             id,
		GeneratedAt:    generated,
		BaselineName:   p.Baseline.Technology.Name,
		BaselineShort:  p.Baseline.Technology.ShortName,
		CandidateName:  p.Candidate.Technology.Name,
		CandidateShort: p.Candidate.Technology.ShortName,
	}
}

// MapDomainProfileToStoreMetrics flattens the present metrics of a profile, sorted by name.
func MapDomainProfileToStoreMetrics(runID string, p domain.TechnologyProfile) []store.MetricRecord {
	records := make([]store.MetricRecord, 0, len(p.Metrics))
	for name, v := range p.Metrics {
		if !v.Present {
			continue
		}
		records = append(records, store.MetricRecord{
			RunID:  runID,
			Role:   string(p.Technology.Role),
			Metric: string(name),
			Value:  v.Value,
			Unit:   v.Unit.Name(),
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Metric < records[j].Metric })
	return records
}

func MapDomainProfileToStoreAttributes(runID string, p domain.TechnologyProfile) []store.AttributeRecord {
	records := make([]store.AttributeRecord, 0, len(p.Attributes))
	for k, v := range p.Attributes {
		records = append(records, store.AttributeRecord{
			RunID: runID,
			Role:  string(p.Technology.Role),
			Key:   k,
			Value: v,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records
}

// MapStoreRunToDomainProfiles rebuilds both profiles of a recorded run.
func MapStoreRunToDomainProfiles(
	run store.Run,
	metrics []store.MetricRecord,
	attrs []store.AttributeRecord,
) domain.Profiles {
	p := domain.Profiles{
		Baseline: domain.NewTechnologyProfile(domain.Technology{
			Role: domain.RoleBaseline, Name: run.BaselineName, ShortName: run.BaselineShort,
		}),
		Candidate: domain.NewTechnologyProfile(domain.Technology{
			Role: domain.RoleCandidate, Name: run.CandidateName, ShortName: run.CandidateShort,
		}),
	}
	pick := func(role string) *domain.TechnologyProfile {
		switch domain.Role(role) {
		case domain.RoleBaseline:
			return &p.Baseline
		case domain.RoleCandidate:
			return &p.Candidate
		}
		return nil
	}

	for _, m := range metrics {
		if target := pick(m.Role); target != nil {
			target.Metrics[domain.MetricName(m.Metric)] = domain.Measured(m.Value, domain.UnitByName(m.Unit))
		}
	}
	for _, a := range attrs {
		if target := pick(a.Role); target != nil {
			target.Attributes[a.Key] = a.Value
		}
	}
	return p
}
