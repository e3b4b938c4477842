package resolver

import (
	"context"
	"path/filepath"

	"github.com/de-tools/isobench/pkg/models/domain"
)

// Artifact file names written by the benchmark collection scripts.
const (
	FileStartupTime      = "startup_time.txt"
	FileUsedMemory       = "used_memory_mb.txt"
	FileVMInternalMemory = "vm_internal_memory_mb.txt"
	FileConfiguredMemory = "configured_memory_mb.txt"
	FileDiskActualBytes  = "disk_actual_bytes.txt"
	FileDiskSize         = "disk_size.txt"
	FileConfiguredCPU    = "configured_cpu.txt"
	FileVMIP             = "vm_ip.txt"

	FileContainerMemory = "memory_used_mb.txt"
	FileContainerDisk   = "total_disk_bytes.txt"
	FileContainerCPU    = "cpu_percent.txt"

	AttributeIP = "ip"
)

// MetricPlan is the resolution chain of one metric.
type MetricPlan struct {
	Metric     domain.MetricName
	Unit       domain.Unit
	Candidates []Candidate
}

// AttributePlan reads a free-text attribute such as an address.
type AttributePlan struct {
	Key    string
	Source Source
}

// Plan lists everything resolved for one technology.
type Plan struct {
	Technology domain.Technology
	Metrics    []MetricPlan
	Attributes []AttributePlan
}

func scalar(path string) Candidate {
	return Candidate{Source: FileSource(path), Conversion: ConvertScalar}
}

// BaselinePlan is the resolution plan for the virtual machine results directory.
func BaselinePlan(tech domain.Technology, dir string, stress *Table) Plan {
	at := func(name string) string { return filepath.Join(dir, name) }

	metrics := []MetricPlan{
		{Metric: domain.MetricStartupTime, Unit: domain.UnitSeconds, Candidates: []Candidate{
			scalar(at(FileStartupTime)),
		}},
		{Metric: domain.MetricMemoryMB, Unit: domain.UnitMegabytes, Candidates: []Candidate{
			scalar(at(FileUsedMemory)),
			scalar(at(FileVMInternalMemory)),
			scalar(at(FileConfiguredMemory)),
		}},
		{Metric: domain.MetricDiskBytes, Unit: domain.UnitBytes, Candidates: []Candidate{
			scalar(at(FileDiskActualBytes)),
			{Source: FileSource(at(FileDiskSize)), Conversion: ConvertSize},
		}},
		{Metric: domain.MetricCPUCores, Unit: domain.UnitCount, Candidates: []Candidate{
			scalar(at(FileConfiguredCPU)),
		}},
	}

	return Plan{
		Technology: tech,
		Metrics:    append(metrics, stressPlans(stress)...),
		Attributes: []AttributePlan{{Key: AttributeIP, Source: FileSource(at(FileVMIP))}},
	}
}

// CandidatePlan is the resolution plan for the container results directory.
func CandidatePlan(tech domain.Technology, dir string, stress *Table) Plan {
	at := func(name string) string { return filepath.Join(dir, name) }

	metrics := []MetricPlan{
		{Metric: domain.MetricStartupTime, Unit: domain.UnitSeconds, Candidates: []Candidate{
			scalar(at(FileStartupTime)),
		}},
		{Metric: domain.MetricMemoryMB, Unit: domain.UnitMegabytes, Candidates: []Candidate{
			scalar(at(FileContainerMemory)),
		}},
		{Metric: domain.MetricDiskBytes, Unit: domain.UnitBytes, Candidates: []Candidate{
			scalar(at(FileContainerDisk)),
		}},
		{Metric: domain.MetricCPUPercent, Unit: domain.UnitPercent, Candidates: []Candidate{
			scalar(at(FileContainerCPU)),
		}},
	}

	return Plan{
		Technology: tech,
		Metrics:    append(metrics, stressPlans(stress)...),
	}
}

var stressUnits = map[domain.MetricName]domain.Unit{
	domain.MetricQPS:             domain.UnitRequestsPerSecond,
	domain.MetricAvgResponseTime: domain.UnitMilliseconds,
	domain.MetricFailedRequests:  domain.UnitCount,
	domain.MetricTransferRate:    domain.UnitKilobytesPerSecond,
}

func stressPlans(table *Table) []MetricPlan {
	plans := make([]MetricPlan, 0, len(domain.StressMetrics))
	for _, m := range domain.StressMetrics {
		plans = append(plans, MetricPlan{
			Metric:     m,
			Unit:       stressUnits[m],
			Candidates: []Candidate{{Source: TableSource{Table: table, Metric: m}}},
		})
	}
	return plans
}

// ResolveProfile runs every chain of the plan. Metrics that resolve to absent are left
// out of the profile.
func ResolveProfile(ctx context.Context, plan Plan) domain.TechnologyProfile {
	profile := domain.NewTechnologyProfile(plan.Technology)

	for _, mp := range plan.Metrics {
		v := Resolve(ctx, mp.Metric, mp.Unit, mp.Candidates)
		if v.Present {
			profile.Metrics[mp.Metric] = v
		}
	}

	for _, ap := range plan.Attributes {
		if raw, ok := ap.Source.Read(); ok {
			profile.Attributes[ap.Key] = raw
		}
	}

	return profile
}
