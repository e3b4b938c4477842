package normalize

import (
	"testing"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StripsUnitSuffix(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"megabytes", "512MB", 512},
		{"gigabytes", "2GB", 2},
		{"kilobytes", "64KB", 64},
		{"bytes", "1024B", 1024},
		{"percent", "37.5%", 37.5},
		{"milliseconds", "12.34ms", 12.34},
		{"seconds", "1.25s", 1.25},
		{"space before unit", "512 MB", 512},
		{"surrounding whitespace", "  42\n", 42},
		{"plain number", "3.14", 3.14},
		{"negative", "-5", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, -1))
		})
	}
}

func TestNormalize_ReturnsDefaultOnFailure(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "12abc", "MB", "5mb", "NaN", "Inf", "1.2.3"} {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, 7.0, Normalize(raw, 7))
		})
	}
}

func TestParse_ReportsUnit(t *testing.T) {
	q, err := Parse("10ms")
	require.NoError(t, err)
	assert.Equal(t, 10.0, q.Value)
	assert.Equal(t, domain.UnitMilliseconds, q.Unit)

	q, err = Parse("88")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitNone, q.Unit)

	_, err = Parse("fast")
	assert.Error(t, err)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("  ")
	assert.EqualError(t, err, "empty measurement")
}
