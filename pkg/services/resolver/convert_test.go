package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"10G", 10 * 1024 * 1024 * 1024},
		{"10g", 10 * 1024 * 1024 * 1024},
		{"10GB", 10 * 1024 * 1024 * 1024},
		{"10GiB", 10 * 1024 * 1024 * 1024},
		{"10M", 10 * 1024 * 1024},
		{"2.5m", 2.5 * 1024 * 1024},
		{"4K", 4 * 1024},
		{"10737418240", 10737418240},
		{"1024B", 1024},
		{" 20G\n", 20 * 1024 * 1024 * 1024},
		{"", 0},
		{"G", 0},
		{"garbage", 0},
		{"1G0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSize(tt.raw))
		})
	}
}

func TestConversion_Apply(t *testing.T) {
	assert.Equal(t, 512.0, ConvertScalar.Apply("512MB"))
	assert.Equal(t, 0.0, ConvertScalar.Apply("n/a"))
	assert.Equal(t, float64(512*1024*1024), ConvertSize.Apply("512M"))
}
