package api

import "time"

type MetricValue struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

type Profile struct {
	Role       string                 `json:"role" yaml:"role"`
	Name       string                 `json:"name" yaml:"name"`
	ShortName  string                 `json:"short_name" yaml:"short_name"`
	Metrics    map[string]MetricValue `json:"metrics" yaml:"metrics"`
	Attributes map[string]string      `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type Profiles struct {
	Baseline  Profile `json:"baseline" yaml:"baseline"`
	Candidate Profile `json:"candidate" yaml:"candidate"`
}

type Comparison struct {
	Metric         string  `json:"metric" yaml:"metric"`
	Baseline       float64 `json:"baseline" yaml:"baseline"`
	Candidate      float64 `json:"candidate" yaml:"candidate"`
	HigherIsBetter bool    `json:"higher_is_better" yaml:"higher_is_better"`
	Percentage     float64 `json:"percentage" yaml:"percentage"`
	Outcome        string  `json:"outcome" yaml:"outcome"`
}

type Finding struct {
	Metric     string  `json:"metric,omitempty" yaml:"metric,omitempty"`
	Title      string  `json:"title" yaml:"title"`
	Outcome    string  `json:"outcome" yaml:"outcome"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Statement  string  `json:"statement" yaml:"statement"`
	Derived    bool    `json:"derived" yaml:"derived"`
}

type Section struct {
	ID       string `json:"id"`
	Markdown string `json:"markdown"`
}

type Report struct {
	Title     string    `json:"title"`
	Generated time.Time `json:"generated"`
	Sections  []Section `json:"sections"`
	Findings  []Finding `json:"findings"`
}

// Analysis is the machine-readable outcome of one comparison run.
type Analysis struct {
	RunID       string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Profiles    Profiles     `json:"profiles" yaml:"profiles"`
	Comparisons []Comparison `json:"comparisons" yaml:"comparisons"`
	Findings    []Finding    `json:"findings" yaml:"findings"`
}

type Run struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Baseline    string    `json:"baseline"`
	Candidate   string    `json:"candidate"`
}
