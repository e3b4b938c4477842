package domain

type Role string

const (
	RoleBaseline  Role = "baseline"
	RoleCandidate Role = "candidate"
)

// Technology describes one side of the comparison.
type Technology struct {
	Role      Role
	Name      string // VM (KVM)
	ShortName string // VM
}

// TechnologyProfile holds every resolved metric for one technology.
type TechnologyProfile struct {
	Technology Technology
	Metrics    map[MetricName]MetricValue
	Attributes map[string]string // ip -> 192.168.122.10
}

func NewTechnologyProfile(tech Technology) TechnologyProfile {
	return TechnologyProfile{
		Technology: tech,
		Metrics:    make(map[MetricName]MetricValue),
		Attributes: make(map[string]string),
	}
}

// Metric returns the resolved value or an absent one.
func (p TechnologyProfile) Metric(name MetricName) MetricValue {
	v, ok := p.Metrics[name]
	if !ok {
		return MetricValue{}
	}
	return v
}

func (p TechnologyProfile) Value(name MetricName) float64 {
	return p.Metric(name).Float()
}

func (p TechnologyProfile) Attribute(key, def string) string {
	if v, ok := p.Attributes[key]; ok && v != "" {
		return v
	}
	return def
}

// HasStress reports whether any load-test metric was loaded for this technology.
func (p TechnologyProfile) HasStress() bool {
	for _, name := range StressMetrics {
		if p.Metric(name).Present {
			return true
		}
	}
	return false
}

// Profiles is the pair of technologies compared in a run.
type Profiles struct {
	Baseline  TechnologyProfile
	Candidate TechnologyProfile
}
