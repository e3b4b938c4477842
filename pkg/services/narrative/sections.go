package narrative

import (
	"fmt"

	"github.com/de-tools/isobench/pkg/models/domain"
)

func header(in Input) (domain.ReportSection, bool) {
	s := newSection(domain.SectionHeader)
	s.add("# %s\n\n", in.Title)
	s.add("**Generated**: %s\n\n", in.Generated.Format(timestampLayout))
	s.add("---\n\n")
	return s.ReportSection, true
}

func summary(in Input) (domain.ReportSection, bool) {
	s := newSection(domain.SectionSummary)
	s.add("## 1. Executive Summary\n\n")
	s.add("This report compares %s and %s deploying the same application (%s), ",
		in.baseline().Name, in.candidate().Name, in.Testbed.Application)
	s.add("covering startup time, resource usage and concurrent performance.\n\n")
	return s.ReportSection, true
}

func environment(in Input) (domain.ReportSection, bool) {
	base, cand := in.Profiles.Baseline, in.Profiles.Candidate

	s := newSection(domain.SectionEnvironment)
	s.add("## 2. Test Environment\n\n")
	s.add("### 2.1 Application Setup\n\n")
	s.add("- **Application**: %s\n", in.Testbed.Application)
	s.add("- **%s**: %s\n", base.Technology.ShortName, in.Testbed.BaselinePlatform)
	s.add("- **%s**: %s\n", cand.Technology.ShortName, in.Testbed.CandidatePlatform)
	s.add("- **Load tool**: %s\n\n", in.Testbed.LoadTool)

	s.add("### 2.2 Resource Configuration\n\n")
	s.add("- **%s address**: %s\n", base.Technology.ShortName, base.Attribute("ip", "unknown"))
	if cores := base.Value(domain.MetricCPUCores); cores > 0 {
		s.add("- **%s configured vCPUs**: %.0f\n", base.Technology.ShortName, cores)
	} else {
		s.add("- **%s configured vCPUs**: not recorded\n", base.Technology.ShortName)
	}
	if cpu := cand.Metric(domain.MetricCPUPercent); cpu.Present {
		s.add("- **%s CPU usage**: %.2f%%\n\n", cand.Technology.ShortName, cpu.Value)
	} else {
		s.add("- **%s CPU usage**: not recorded\n\n", cand.Technology.ShortName)
	}
	return s.ReportSection, true
}

func performance(in Input) (domain.ReportSection, bool) {
	s := newSection(domain.SectionPerformance)
	s.add("## 3. Performance Comparison\n\n")
	return s.ReportSection, true
}

func startup(in Input) (domain.ReportSection, bool) {
	b, c := in.baseline(), in.candidate()
	cmp := in.Comparisons.Get(domain.MetricStartupTime)

	s := newSection(domain.SectionStartup)
	s.add("### 3.1 Startup Time\n\n")
	s.tableHeader(in)
	s.add("| Startup time | %.2f s | %.2f s | %s |\n", cmp.Baseline, cmp.Candidate, phrasing{
		candidate:    escapeCell(c.ShortName) + " faster by %.1f%%",
		baseline:     escapeCell(b.ShortName) + " faster by %.1f%%",
		insufficient: insufficientCell,
	}.render(cmp))

	s.add("\n**Analysis**: ")
	switch cmp.Outcome() {
	case domain.OutcomeCandidateBetter:
		s.add("%s starts markedly faster than %s; its startup time is only %.1f%% of %s's. ",
			c.ShortName, b.ShortName, cmp.Ratio()*100, b.ShortName)
		s.add("Containers share the host kernel and do not boot a complete operating system.\n\n")
	case domain.OutcomeBaselineBetter:
		s.add("%s started faster than %s in this run; %s needed %.1f%% of %s's startup time. ",
			b.ShortName, c.ShortName, c.ShortName, cmp.Ratio()*100, b.ShortName)
		s.add("Check image pulls and initialization work in the container startup path.\n\n")
	default:
		s.add("Insufficient data to compare startup time; there is no measurable difference or a measurement is missing.\n\n")
	}
	return s.ReportSection, true
}

func memory(in Input) (domain.ReportSection, bool) {
	b, c := in.baseline(), in.candidate()
	cmp := in.Comparisons.Get(domain.MetricMemoryMB)

	s := newSection(domain.SectionMemory)
	s.add("### 3.2 Memory Usage\n\n")
	s.tableHeader(in)
	s.add("| Memory used | %.1f MB | %.1f MB | %s |\n", cmp.Baseline, cmp.Candidate, phrasing{
		candidate:    escapeCell(c.ShortName) + " uses %.1f%% less",
		baseline:     escapeCell(c.ShortName) + " uses %.1f%% more",
		insufficient: insufficientCell,
	}.render(cmp))

	s.add("\n**Analysis**: ")
	switch cmp.Outcome() {
	case domain.OutcomeCandidateBetter:
		s.add("%s uses less memory, only %.1f%% of %s's. ", c.ShortName, cmp.Ratio()*100, b.ShortName)
		s.add("Containers share the host kernel instead of running a full operating system per instance, ")
		s.add("so the memory overhead is smaller.\n\n")
	case domain.OutcomeBaselineBetter:
		s.add("%s used less memory than %s in this run; %s needed %.1f%% of %s's memory.\n\n",
			b.ShortName, c.ShortName, c.ShortName, cmp.Ratio()*100, b.ShortName)
	default:
		s.add("Insufficient data to compare memory usage; there is no measurable difference or a measurement is missing.\n\n")
	}
	return s.ReportSection, true
}

func disk(in Input) (domain.ReportSection, bool) {
	b, c := in.baseline(), in.candidate()
	cmp := in.Comparisons.Get(domain.MetricDiskBytes)

	s := newSection(domain.SectionDisk)
	s.add("### 3.3 Disk Usage\n\n")
	s.tableHeader(in)
	s.add("| Disk used | %s | %s | %s |\n", FormatBytes(cmp.Baseline), FormatBytes(cmp.Candidate), phrasing{
		candidate:    escapeCell(c.ShortName) + " uses %.1f%% less",
		baseline:     escapeCell(c.ShortName) + " uses %.1f%% more",
		insufficient: insufficientCell,
	}.render(cmp))

	s.add("\n**Analysis**: ")
	switch cmp.Outcome() {
	case domain.OutcomeCandidateBetter:
		s.add("%s images are much smaller than %s images, occupying only %.1f%% of the disk. ",
			c.ShortName, b.ShortName, cmp.Ratio()*100)
		s.add("Layered filesystems let containers share base image layers and save storage.\n\n")
	case domain.OutcomeBaselineBetter:
		s.add("%s occupied less disk than %s in this run; %s needed %.1f%% of %s's disk.\n\n",
			b.ShortName, c.ShortName, c.ShortName, cmp.Ratio()*100, b.ShortName)
	default:
		s.add("Insufficient data to compare disk usage; there is no measurable difference or a measurement is missing.\n\n")
	}
	return s.ReportSection, true
}

// throughput is only present when load-test results exist for at least one side.
func throughput(in Input) (domain.ReportSection, bool) {
	if !in.Profiles.Baseline.HasStress() && !in.Profiles.Candidate.HasStress() {
		return domain.ReportSection{}, false
	}
	b, c := in.baseline(), in.candidate()
	bn, cn := escapeCell(b.ShortName), escapeCell(c.ShortName)
	qps := in.Comparisons.Get(domain.MetricQPS)
	rt := in.Comparisons.Get(domain.MetricAvgResponseTime)
	failed := in.Comparisons.Get(domain.MetricFailedRequests)
	rate := in.Comparisons.Get(domain.MetricTransferRate)

	s := newSection(domain.SectionThroughput)
	s.add("### 3.4 Concurrent Performance (Load Test)\n\n")
	s.tableHeader(in)
	s.add("| QPS (requests per second) | %.0f | %.0f | %s |\n", qps.Baseline, qps.Candidate, phrasing{
		candidate:    cn + " higher by %.1f%%",
		baseline:     bn + " higher by %.1f%%",
		insufficient: insufficientCell,
	}.render(qps))
	s.add("| Average response time | %.2f ms | %.2f ms | %s |\n", rt.Baseline, rt.Candidate, responseTimeCell(rt, bn, cn))
	// Zero failed requests is a real result but still reads as insufficient data here.
	s.add("| Failed requests | %.0f | %.0f | %s |\n", failed.Baseline, failed.Candidate, phrasing{
		candidate:    cn + " fails %.1f%% less",
		baseline:     cn + " fails %.1f%% more",
		insufficient: insufficientCell,
	}.render(failed))
	s.add("| Transfer rate | %.2f KB/s | %.2f KB/s | %s |\n", rate.Baseline, rate.Candidate, phrasing{
		candidate:    cn + " higher by %.1f%%",
		baseline:     bn + " higher by %.1f%%",
		insufficient: insufficientCell,
	}.render(rate))

	s.add("\n**Analysis**: ")
	switch qps.Outcome() {
	case domain.OutcomeCandidateBetter:
		s.add("%s delivers higher concurrent throughput: containerized applications pay less system-call ", c.ShortName)
		s.add("overhead and there is no virtualization layer in the request path.\n\n")
	case domain.OutcomeBaselineBetter:
		s.add("%s delivered higher concurrent throughput in this run; the gap depends on the ", b.ShortName)
		s.add("virtualization technology and the hardware configuration.\n\n")
	default:
		s.add("Insufficient data to compare concurrent throughput; there is no measurable difference or a load-test result is missing.\n\n")
	}
	return s.ReportSection, true
}

// responseTimeCell measures the gap against the slower side, so a faster baseline is
// reported relative to the candidate's response time.
func responseTimeCell(rt domain.ComparisonResult, bn, cn string) string {
	if rt.Outcome() == domain.OutcomeBaselineBetter {
		return fmt.Sprintf("%s faster by %.1f%%", bn, (rt.Candidate-rt.Baseline)/rt.Candidate*100)
	}
	return phrasing{
		candidate:    cn + " faster by %.1f%%",
		insufficient: insufficientCell,
	}.render(rt)
}

func isolation(in Input) (domain.ReportSection, bool) {
	b, c := in.baseline().Name, in.candidate().Name

	s := newSection(domain.SectionIsolation)
	s.add("## 4. Isolation Boundary Analysis\n\n")

	s.add("### 4.1 Kernel Isolation\n\n")
	s.add("- **%s**: ", b)
	s.add("Every VM runs its own operating system kernel, giving complete kernel isolation. ")
	s.add("Different VMs can run different operating systems and kernel versions. ")
	s.add("A kernel crash inside one VM does not affect the others.\n\n")
	s.add("- **%s**: ", c)
	s.add("All containers share the host kernel, so there is no kernel isolation. ")
	s.add("Every container has to use the host kernel version. ")
	s.add("A kernel vulnerability can affect all containers on the host.\n\n")

	s.add("### 4.2 Filesystem Isolation\n\n")
	s.add("- **%s**: ", b)
	s.add("Every VM has its own virtual disk and a fully isolated filesystem. ")
	s.add("Different filesystem types (ext4, xfs, btrfs) can be used per VM.\n\n")
	s.add("- **%s**: ", c)
	s.add("A union filesystem stacks the container layer on top of image layers. ")
	s.add("Containers share base image layers, which saves storage. ")
	s.add("Isolation is provided by mount namespaces over shared underlying storage.\n\n")

	s.add("### 4.3 Network Isolation\n\n")
	s.add("- **%s**: ", b)
	s.add("Every VM has its own virtual NIC attached to a virtual switch. ")
	s.add("Complete network isolation and complex topologies are supported, ")
	s.add("and each VM can configure its own network stack.\n\n")
	s.add("- **%s**: ", c)
	s.add("Each container gets its own network stack inside a network namespace. ")
	s.add("Container networks (bridge, overlay) connect containers with each other.\n\n")
	return s.ReportSection, true
}

func keyFindings(in Input) (domain.ReportSection, bool) {
	s := newSection(domain.SectionFindings)
	s.add("## 5. Key Findings\n\n")
	for _, f := range in.Findings {
		s.add("- **%s**: %s\n", f.Title, f.Statement)
	}
	s.add("\n")
	return s.ReportSection, true
}

func scenarios(in Input) (domain.ReportSection, bool) {
	s := newSection(domain.SectionScenarios)
	s.add("## 6. Recommended Usage Scenarios\n\n")

	s.add("### 6.1 When to Choose %s\n\n", in.baseline().ShortName)
	s.add("- Applications that need a different operating system\n")
	s.add("- Multi-tenant environments with strict isolation requirements\n")
	s.add("- Legacy applications that rely on a complete operating system\n")
	s.add("- Workloads that need their own kernel configuration\n")
	s.add("- Compliance regimes that mandate full isolation\n\n")

	s.add("### 6.2 When to Choose %s\n\n", in.candidate().ShortName)
	s.add("- Microservice architectures and cloud-native applications\n")
	s.add("- Workloads that need fast deployment and elastic scaling\n")
	s.add("- Resource-constrained environments that need higher utilization\n")
	s.add("- DevOps and CI/CD pipelines\n")
	s.add("- Consistency across development, test and production\n\n")
	return s.ReportSection, true
}

func elasticity(in Input) (domain.ReportSection, bool) {
	base, cand := in.Profiles.Baseline, in.Profiles.Candidate
	b, c := base.Technology.ShortName, cand.Technology.ShortName
	start := in.Comparisons.Get(domain.MetricStartupTime)
	mem := in.Comparisons.Get(domain.MetricMemoryMB)

	s := newSection(domain.SectionElasticity)
	s.add("## 7. Elastic Scaling Analysis\n\n")
	s.add("How the two technologies behave when scaling elastically:\n\n")

	s.add("### 7.1 Impact of Startup Speed\n\n")
	s.add("- **%s**: startup time about %.2f s\n", b, start.Baseline)
	s.add("- **%s**: startup time about %.2f s\n", c, start.Candidate)
	switch start.Outcome() {
	case domain.OutcomeCandidateBetter:
		s.add("- **Advantage**: %s reacts faster to traffic peaks and can add capacity sooner\n\n", c)
	case domain.OutcomeBaselineBetter:
		s.add("- **Advantage**: %s started faster in this run and would add capacity sooner\n\n", b)
	default:
		s.add("- **Advantage**: insufficient data to compare scaling responsiveness\n\n")
	}

	s.add("### 7.2 Impact of Resource Density\n\n")
	s.add("- **%s**: about %.1f MB memory and %s disk per instance\n",
		b, base.Value(domain.MetricMemoryMB), FormatBytes(base.Value(domain.MetricDiskBytes)))
	s.add("- **%s**: about %.1f MB memory and %s disk per instance\n",
		c, cand.Value(domain.MetricMemoryMB), FormatBytes(cand.Value(domain.MetricDiskBytes)))
	s.add("- **Advantage**: %s\n\n", density(mem, b, c))

	s.add("### 7.3 Summary\n\n")
	s.add("%s strengths under elastic scaling:\n", c)
	s.add("1. **Fast startup**: new instances start in seconds and follow traffic changes quickly\n")
	s.add("2. **High density**: more instances fit on the same hardware, raising utilization\n")
	s.add("3. **Lightweight**: a small footprint lowers the cost of scaling out\n")
	s.add("4. **Automation**: automatic scaling policies are easier to implement\n\n")
	s.add("%s strengths under elastic scaling:\n", b)
	s.add("1. **Strong isolation**: suits multi-tenant setups where tenants must be fully separated\n")
	s.add("2. **Stability**: a failing instance does not affect the others\n")
	s.add("3. **Compatibility**: legacy applications run without modification\n\n")
	return s.ReportSection, true
}

// density derives the instance density ratio from memory usage (baseline/candidate).
func density(mem domain.ComparisonResult, b, c string) string {
	switch mem.Outcome() {
	case domain.OutcomeCandidateBetter:
		return fmt.Sprintf("on the same hardware %s can run about %.1fx as many instances as %s",
			c, mem.Baseline/mem.Candidate, b)
	case domain.OutcomeBaselineBetter:
		return fmt.Sprintf("on the same hardware %s can run about %.1fx as many instances as %s",
			b, mem.Candidate/mem.Baseline, c)
	default:
		return "insufficient data to estimate instance density"
	}
}

func conclusion(in Input) (domain.ReportSection, bool) {
	b, c := in.baseline().ShortName, in.candidate().ShortName

	s := newSection(domain.SectionConclusion)
	s.add("## 8. Conclusion\n\n")
	s.add("The experiment supports the following conclusions:\n\n")
	s.add("1. **Performance**: %s is typically ahead on startup speed and resource usage, while %s offers stronger isolation\n", c, b)
	s.add("2. **Scenarios**: %s fits cloud-native, microservice and elastic workloads; %s fits legacy and strong-isolation workloads\n", c, b)
	s.add("3. **Choice**: pick the technology from business requirements, security requirements and resource constraints\n")
	s.add("4. **Mixed use**: production environments can combine %s and %s to benefit from both\n\n", b, c)
	return s.ReportSection, true
}

func footer(in Input) (domain.ReportSection, bool) {
	s := newSection(domain.SectionFooter)
	s.add("---\n\n")
	s.add("*This report was generated automatically from the collected test results.*\n")
	return s.ReportSection, true
}
