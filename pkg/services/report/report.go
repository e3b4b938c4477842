// Package report runs the full pipeline: load profiles, compare, extract findings and
// synthesize the markdown report.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/services/compare"
	"github.com/de-tools/isobench/pkg/services/findings"
	"github.com/de-tools/isobench/pkg/services/narrative"
	"github.com/de-tools/isobench/pkg/services/resolver"
	"github.com/de-tools/isobench/pkg/store/fs"
	"github.com/rs/zerolog"
)

// Recorder persists the resolved profiles of a run and returns the run id.
type Recorder interface {
	Record(ctx context.Context, generated time.Time, profiles domain.Profiles) (string, error)
}

// Publisher uploads the rendered report.
type Publisher interface {
	Publish(ctx context.Context, body []byte) (string, error)
}

type Result struct {
	RunID       string
	Location    string
	Profiles    domain.Profiles
	Comparisons domain.ComparisonSet
	Findings    []domain.Finding
	Report      domain.Report
	Text        string
}

type Controller interface {
	Generate(ctx context.Context, in resolver.Inputs) (*Result, error)
}

// Options configures a controller. When OutputFile is set the report is written there
// before the run is recorded or published.
type Options struct {
	Title      string
	OutputFile string
	Testbed    domain.Testbed
	Settings   resolver.Settings
	Clock      func() time.Time
	Recorder   Recorder
	Publisher  Publisher
}

type controller struct {
	opts Options
}

func NewController(opts Options) Controller {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &controller{opts: opts}
}

func (c *controller) Generate(ctx context.Context, in resolver.Inputs) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	profiles, err := resolver.LoadProfiles(ctx, in, c.opts.Settings)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("baseline_metrics", len(profiles.Baseline.Metrics)).
		Int("candidate_metrics", len(profiles.Candidate.Metrics)).
		Msg("profiles resolved")

	set := compare.Profiles(profiles)
	found := findings.Extract(set, profiles.Baseline.Technology, profiles.Candidate.Technology)

	generated := c.opts.Clock()
	doc := narrative.Synthesize(narrative.Input{
		Title:       c.opts.Title,
		Generated:   generated,
		Testbed:     c.opts.Testbed,
		Profiles:    profiles,
		Comparisons: set,
		Findings:    found,
	})
	res := &Result{
		Profiles:    profiles,
		Comparisons: set,
		Findings:    found,
		Report:      doc,
		Text:        narrative.Render(doc),
	}
	logger.Info().Int("sections", len(doc.Sections)).Int("findings", len(found)).Msg("report synthesized")

	if c.opts.OutputFile != "" {
		if err := fs.WriteFile(c.opts.OutputFile, []byte(res.Text)); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		logger.Info().Str("path", c.opts.OutputFile).Msg("report written")
	}

	if c.opts.Recorder != nil {
		id, err := c.opts.Recorder.Record(ctx, generated, profiles)
		if err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
		res.RunID = id
		logger.Info().Str("run_id", id).Msg("run recorded")
	}

	if c.opts.Publisher != nil {
		loc, err := c.opts.Publisher.Publish(ctx, []byte(res.Text))
		if err != nil {
			return nil, fmt.Errorf("publish report: %w", err)
		}
		res.Location = loc
		logger.Info().Str("location", loc).Msg("report published")
	}
	return res, nil
}
