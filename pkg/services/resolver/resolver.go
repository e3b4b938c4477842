// Package resolver resolves one value per metric from prioritized candidate sources.
package resolver

import (
	"context"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Candidate is one entry of a resolution chain.
type Candidate struct {
	Source     Source
	Conversion Conversion
}

// Resolve walks the candidates in order and returns the first strictly non-zero value.
// When nothing is non-zero the result is a measured zero if any candidate could be read,
// and absent otherwise. Resolve never fails.
func Resolve(ctx context.Context, metric domain.MetricName, unit domain.Unit, candidates []Candidate) domain.MetricValue {
	logger := zerolog.Ctx(ctx)

	readable := false
	for i, c := range candidates {
		if c.Source == nil {
			continue
		}
		raw, ok := c.Source.Read()
		if !ok {
			logger.Debug().
				Str("metric", string(metric)).
				Str("source", c.Source.String()).
				Int("priority", i).
				Msg("candidate missing, falling through")
			continue
		}
		readable = true

		v := c.Conversion.Apply(raw)
		if v != 0 {
			return domain.Measured(v, unit)
		}
		logger.Debug().
			Str("metric", string(metric)).
			Str("source", c.Source.String()).
			Str("raw", raw).
			Int("priority", i).
			Msg("candidate resolved to zero, falling through")
	}

	if readable {
		return domain.Measured(0, unit)
	}
	return domain.Absent(unit)
}
