package resolver

import (
	"strings"

	"github.com/de-tools/isobench/pkg/services/normalize"
)

// Conversion is the unit hint attached to a candidate source.
type Conversion int

const (
	// ConvertScalar strips a unit suffix and keeps the magnitude.
	ConvertScalar Conversion = iota
	// ConvertSize expands a trailing K/M/G size letter into bytes.
	ConvertSize
)

var sizeMultipliers = map[byte]float64{
	'K': 1 << 10,
	'M': 1 << 20,
	'G': 1 << 30,
}

func (c Conversion) Apply(raw string) float64 {
	switch c {
	case ConvertSize:
		return ParseSize(raw)
	default:
		return normalize.Normalize(raw, 0)
	}
}

// ParseSize converts strings such as "10G", "512m", "2GiB" or "10737418240" to bytes.
// Only the trailing unit is inspected; anything unparseable yields 0.
func ParseSize(raw string) float64 {
	s := trimByteSuffix(strings.TrimSpace(raw))

	mult := 1.0
	if n := len(s); n > 0 {
		if m, ok := sizeMultipliers[asciiUpper(s[n-1])]; ok {
			mult = m
			s = s[:n-1]
		}
	}
	return normalize.Normalize(s, 0) * mult
}

// trimByteSuffix drops the "B" or "iB" that may follow a size letter ("10GB", "10GiB").
func trimByteSuffix(s string) string {
	n := len(s)
	if n >= 3 && asciiUpper(s[n-1]) == 'B' && asciiUpper(s[n-2]) == 'I' && isSizeLetter(s[n-3]) {
		return s[:n-2]
	}
	if n >= 2 && asciiUpper(s[n-1]) == 'B' && isSizeLetter(s[n-2]) {
		return s[:n-1]
	}
	return s
}

func isSizeLetter(b byte) bool {
	_, ok := sizeMultipliers[asciiUpper(b)]
	return ok
}

func asciiUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
