package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/store/fs"
	"github.com/rs/zerolog"
)

// Inputs locates the artifacts of one run.
type Inputs struct {
	BaselineDir  string
	CandidateDir string
	StressDir    string
}

// Settings carries the configurable parts of loading.
type Settings struct {
	Baseline            domain.Technology
	Candidate           domain.Technology
	BaselineStressFile  string
	CandidateStressFile string
	Schema              TableSchema
}

// LoadProfiles resolves both technology profiles. Missing or unreadable artifacts are
// absorbed; a load-test table that exists but lacks its label or value column is an error.
func LoadProfiles(ctx context.Context, in Inputs, s Settings) (domain.Profiles, error) {
	baseStress, err := LoadTable(ctx, filepath.Join(in.StressDir, s.BaselineStressFile), s.Schema)
	if err != nil {
		return domain.Profiles{}, fmt.Errorf("load baseline stress table: %w", err)
	}
	candStress, err := LoadTable(ctx, filepath.Join(in.StressDir, s.CandidateStressFile), s.Schema)
	if err != nil {
		return domain.Profiles{}, fmt.Errorf("load candidate stress table: %w", err)
	}

	return domain.Profiles{
		Baseline:  ResolveProfile(ctx, BaselinePlan(s.Baseline, in.BaselineDir, baseStress)),
		Candidate: ResolveProfile(ctx, CandidatePlan(s.Candidate, in.CandidateDir, candStress)),
	}, nil
}

// LoadTable reads and validates a load-test table. A missing file yields a nil table.
func LoadTable(ctx context.Context, path string, schema TableSchema) (*Table, error) {
	logger := zerolog.Ctx(ctx)

	records, err := fs.ReadRecords(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("stress table not found")
			return nil, nil
		}
		logger.Warn().Err(err).Str("path", path).Msg("stress table unreadable, ignoring")
		return nil, nil
	}

	table, err := ParseTable(path, records, schema)
	if err != nil {
		return nil, err
	}

	if req := table.MissingRequired(); len(req) > 0 {
		logger.Warn().
			Str("path", path).
			Interface("metrics", req).
			Msg("stress table has no row for required metrics")
	}
	return table, nil
}
