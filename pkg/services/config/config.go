// Package config loads the run configuration and the testbed description.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/services/resolver"
	"github.com/spf13/viper"
)

const EnvPrefix = "ISOBENCH"

type TechnologyConfig struct {
	Name       string `mapstructure:"name"`
	ShortName  string `mapstructure:"short_name"`
	StressFile string `mapstructure:"stress_file"`
}

type RuleConfig struct {
	Metric   string   `mapstructure:"metric"`
	Include  []string `mapstructure:"include"`
	Exclude  []string `mapstructure:"exclude"`
	Required bool     `mapstructure:"required"`
}

type StressConfig struct {
	LabelColumns []string     `mapstructure:"label_columns"`
	ValueColumns []string     `mapstructure:"value_columns"`
	Rules        []RuleConfig `mapstructure:"rules"`
}

type ReportConfig struct {
	Title   string `mapstructure:"title"`
	Testbed string `mapstructure:"testbed"`
}

type Config struct {
	Report    ReportConfig     `mapstructure:"report"`
	Baseline  TechnologyConfig `mapstructure:"baseline"`
	Candidate TechnologyConfig `mapstructure:"candidate"`
	Stress    StressConfig     `mapstructure:"stress"`
}

func setDefaults(v *viper.Viper) {
	schema := resolver.DefaultTableSchema()

	v.SetDefault("report.title", "Virtualization vs Container Performance Comparison Report")
	v.SetDefault("report.testbed", "")
	v.SetDefault("baseline.name", "VM (KVM)")
	v.SetDefault("baseline.short_name", "VM")
	v.SetDefault("baseline.stress_file", "stress_vm_results.csv")
	v.SetDefault("candidate.name", "Docker")
	v.SetDefault("candidate.short_name", "Docker")
	v.SetDefault("candidate.stress_file", "stress_docker_results.csv")
	v.SetDefault("stress.label_columns", schema.LabelColumns)
	v.SetDefault("stress.value_columns", schema.ValueColumns)
}

// Load reads the configuration from path, if given, on top of the built-in defaults.
// Every key can be overridden with an ISOBENCH_ prefixed environment variable,
// e.g. ISOBENCH_BASELINE_SHORT_NAME.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, r := range c.Stress.Rules {
		if r.Metric == "" {
			return errors.New("stress rule without metric")
		}
		if !slices.Contains(domain.StressMetrics, domain.MetricName(r.Metric)) {
			return fmt.Errorf("stress rule has unknown metric %q, expected one of %v", r.Metric, domain.StressMetrics)
		}
		if len(r.Include) == 0 {
			return fmt.Errorf("stress rule %q has no include labels", r.Metric)
		}
	}
	if c.Baseline.StressFile == "" || c.Candidate.StressFile == "" {
		return errors.New("stress file names must not be empty")
	}
	return nil
}

// Technologies returns the baseline and candidate descriptors.
func (c *Config) Technologies() (domain.Technology, domain.Technology) {
	return technology(domain.RoleBaseline, c.Baseline), technology(domain.RoleCandidate, c.Candidate)
}

func technology(role domain.Role, tc TechnologyConfig) domain.Technology {
	short := tc.ShortName
	if short == "" {
		short = tc.Name
	}
	return domain.Technology{Role: role, Name: tc.Name, ShortName: short}
}

// Schema builds the stress table schema. Without configured rules the built-in label
// rules apply.
func (c *Config) Schema() resolver.TableSchema {
	schema := resolver.DefaultTableSchema()
	if len(c.Stress.LabelColumns) > 0 {
		schema.LabelColumns = c.Stress.LabelColumns
	}
	if len(c.Stress.ValueColumns) > 0 {
		schema.ValueColumns = c.Stress.ValueColumns
	}
	if len(c.Stress.Rules) > 0 {
		schema.Rules = make([]resolver.LabelRule, 0, len(c.Stress.Rules))
		for _, r := range c.Stress.Rules {
			schema.Rules = append(schema.Rules, resolver.LabelRule{
				Metric:   domain.MetricName(r.Metric),
				Include:  r.Include,
				Exclude:  r.Exclude,
				Required: r.Required,
			})
		}
	}
	return schema
}

// Settings converts the configuration into resolver settings.
func (c *Config) Settings() resolver.Settings {
	base, cand := c.Technologies()
	return resolver.Settings{
		Baseline:            base,
		Candidate:           cand,
		BaselineStressFile:  c.Baseline.StressFile,
		CandidateStressFile: c.Candidate.StressFile,
		Schema:              c.Schema(),
	}
}
