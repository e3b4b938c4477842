package resolver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func literals(values ...string) []Candidate {
	out := make([]Candidate, 0, len(values))
	for _, v := range values {
		out = append(out, Candidate{Source: Literal(v)})
	}
	return out
}

func TestResolve_FirstNonZeroWins(t *testing.T) {
	ctx := context.Background()

	got := Resolve(ctx, domain.MetricMemoryMB, domain.UnitMegabytes, literals("0", "0", "42"))

	assert.Equal(t, domain.Measured(42, domain.UnitMegabytes), got)
}

func TestResolve_PriorityOrder(t *testing.T) {
	got := Resolve(context.Background(), domain.MetricMemoryMB, domain.UnitMegabytes, literals("128", "256", "2048"))
	assert.Equal(t, 128.0, got.Value)
}

func TestResolve_AllZero(t *testing.T) {
	got := Resolve(context.Background(), domain.MetricMemoryMB, domain.UnitMegabytes, literals("0", "0", "0"))

	assert.True(t, got.Present)
	assert.Equal(t, 0.0, got.Float())
}

func TestResolve_AllMissing(t *testing.T) {
	dir := t.TempDir()
	candidates := []Candidate{
		{Source: FileSource(filepath.Join(dir, "a.txt"))},
		{Source: FileSource(filepath.Join(dir, "b.txt")), Conversion: ConvertSize},
		{Source: nil},
	}

	got := Resolve(context.Background(), domain.MetricDiskBytes, domain.UnitBytes, candidates)

	assert.False(t, got.Present)
	assert.Equal(t, 0.0, got.Float())
}

func TestResolve_UnparseableFallsThrough(t *testing.T) {
	got := Resolve(context.Background(), domain.MetricStartupTime, domain.UnitSeconds, literals("n/a", "", "3.5s"))
	assert.Equal(t, 3.5, got.Value)
}

func TestResolve_SizeCandidate(t *testing.T) {
	candidates := []Candidate{
		{Source: Literal("0")},
		{Source: Literal("10G"), Conversion: ConvertSize},
	}

	got := Resolve(context.Background(), domain.MetricDiskBytes, domain.UnitBytes, candidates)

	assert.Equal(t, float64(10*1024*1024*1024), got.Value)
}
