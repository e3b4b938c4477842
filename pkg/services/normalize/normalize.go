// Package normalize turns raw textual measurements into numbers.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/isobench/pkg/models/domain"
)

type suffix struct {
	token string
	unit  domain.Unit
}

// suffixes are matched case-sensitively, longest token first so that "ms" wins over "s"
// and "MB" over "B".
var suffixes = []suffix{
	{"GB", domain.UnitGigabytes},
	{"MB", domain.UnitMegabytes},
	{"KB", domain.UnitKilobytes},
	{"ms", domain.UnitMilliseconds},
	{"B", domain.UnitBytes},
	{"%", domain.UnitPercent},
	{"s", domain.UnitSeconds},
}

// Quantity is a parsed magnitude together with the unit suffix it carried.
type Quantity struct {
	Value float64
	Unit  domain.Unit
}

// Parse strips a recognized unit suffix and parses the remaining number. The magnitude is
// returned as written; no unit conversion takes place.
func Parse(raw string) (Quantity, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Quantity{}, errors.New("empty measurement")
	}

	unit := domain.UnitNone
	for _, sfx := range suffixes {
		if strings.HasSuffix(s, sfx.token) {
			s = strings.TrimSpace(strings.TrimSuffix(s, sfx.token))
			unit = sfx.unit
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("parse %q: %w", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}, fmt.Errorf("parse %q: not a finite number", raw)
	}
	return Quantity{Value: v, Unit: unit}, nil
}

// Normalize returns the numeric magnitude of raw, or def when it cannot be parsed.
func Normalize(raw string, def float64) float64 {
	q, err := Parse(raw)
	if err != nil {
		return def
	}
	return q.Value
}
