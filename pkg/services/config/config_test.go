package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	require.NoError(t, err)
	base, cand := cfg.Technologies()
	assert.Equal(t, domain.Technology{Role: domain.RoleBaseline, Name: "VM (KVM)", ShortName: "VM"}, base)
	assert.Equal(t, domain.Technology{Role: domain.RoleCandidate, Name: "Docker", ShortName: "Docker"}, cand)
	assert.Equal(t, "stress_vm_results.csv", cfg.Baseline.StressFile)
	assert.Equal(t, "stress_docker_results.csv", cfg.Candidate.StressFile)
	assert.Equal(t, "Virtualization vs Container Performance Comparison Report", cfg.Report.Title)

	schema := cfg.Schema()
	assert.Equal(t, []string{"指标", "metric"}, schema.LabelColumns)
	assert.Equal(t, []string{"值", "value"}, schema.ValueColumns)
	require.Len(t, schema.Rules, 4)
	assert.Equal(t, domain.MetricQPS, schema.Rules[0].Metric)
}

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	// No indentation at the top level to keep the YAML valid
	path := writeFile(t, "isobench.yaml", `report:
  title: "gVisor vs runc"
  testbed: "/etc/isobench/testbed.ini"
baseline:
  name: "gVisor"
  short_name: ""
  stress_file: "gvisor.csv"
candidate:
  name: "runc"
  short_name: "RC"
stress:
  label_columns: ["name"]
  rules:
    - metric: qps
      include: ["rps"]
      required: true
`)

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	base, cand := cfg.Technologies()
	assert.Equal(t, "gVisor", base.Name)
	assert.Equal(t, "gVisor", base.ShortName)
	assert.Equal(t, "RC", cand.ShortName)
	assert.Equal(t, "/etc/isobench/testbed.ini", cfg.Report.Testbed)

	s := cfg.Settings()
	assert.Equal(t, "gvisor.csv", s.BaselineStressFile)
	assert.Equal(t, "stress_docker_results.csv", s.CandidateStressFile)
	assert.Equal(t, []string{"name"}, s.Schema.LabelColumns)
	assert.Equal(t, []string{"值", "value"}, s.Schema.ValueColumns)
	require.Len(t, s.Schema.Rules, 1)
	assert.Equal(t, domain.MetricQPS, s.Schema.Rules[0].Metric)
	assert.True(t, s.Schema.Rules[0].Matches("RPS"))
	assert.True(t, s.Schema.Rules[0].Required)
}

func TestLoad_EnvOverride(t *testing.T) {
	// Given
	t.Setenv("ISOBENCH_CANDIDATE_SHORT_NAME", "Podman")

	// When
	cfg, err := Load("")

	// Then
	require.NoError(t, err)
	_, cand := cfg.Technologies()
	assert.Equal(t, "Podman", cand.ShortName)
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	path := writeFile(t, "bad.yaml", "baseline: name: : bad")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoad_RuleWithoutInclude_ReturnsError(t *testing.T) {
	path := writeFile(t, "rules.yaml", `stress:
  rules:
    - metric: qps
`)

	_, err := Load(path)

	assert.ErrorContains(t, err, `stress rule "qps" has no include labels`)
}

func TestLoad_RuleWithUnknownMetric_ReturnsError(t *testing.T) {
	// Given a rule whose metric name is misspelled
	path := writeFile(t, "rules.yaml", `stress:
  rules:
    - metric: qsp
      include: ["Requests per second"]
`)

	// When
	_, err := Load(path)

	// Then the rule is rejected instead of being silently ignored
	assert.ErrorContains(t, err, `stress rule has unknown metric "qsp"`)
}

func TestLoadTestbed(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		tb, err := LoadTestbed("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTestbed(), tb)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		tb, err := LoadTestbed(filepath.Join(t.TempDir(), "testbed.ini"))
		require.NoError(t, err)
		assert.Equal(t, DefaultTestbed(), tb)
	})

	t.Run("partial section keeps defaults", func(t *testing.T) {
		// Given
		path := writeFile(t, "testbed.ini", "[testbed]\napplication = Caddy\nload_tool = wrk\n")

		// When
		tb, err := LoadTestbed(path)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "Caddy", tb.Application)
		assert.Equal(t, "wrk", tb.LoadTool)
		assert.Equal(t, DefaultTestbed().BaselinePlatform, tb.BaselinePlatform)
		assert.Equal(t, DefaultTestbed().CandidatePlatform, tb.CandidatePlatform)
	})
}
