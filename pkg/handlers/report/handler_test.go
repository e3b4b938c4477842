package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/isobench/pkg/models/api"
	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/models/store"
	"github.com/de-tools/isobench/pkg/services/compare"
	"github.com/de-tools/isobench/pkg/services/findings"
	"github.com/de-tools/isobench/pkg/services/narrative"
	"github.com/de-tools/isobench/pkg/services/report"
	"github.com/de-tools/isobench/pkg/services/resolver"
	"github.com/de-tools/isobench/pkg/store/duckdb/history"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockController struct {
	mock.Mock
}

func (m *mockController) Generate(ctx context.Context, in resolver.Inputs) (*report.Result, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Result), args.Error(1)
}

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) Record(ctx context.Context, generated time.Time, p domain.Profiles) (string, error) {
	args := m.Called(ctx, generated, p)
	return args.String(0), args.Error(1)
}

func (m *mockHistory) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]store.Run), args.Error(1)
}

func (m *mockHistory) GetProfiles(ctx context.Context, runID string) (domain.Profiles, error) {
	args := m.Called(ctx, runID)
	return args.Get(0).(domain.Profiles), args.Error(1)
}

var inputs = resolver.Inputs{BaselineDir: "vm", CandidateDir: "docker", StressDir: "."}

func sampleProfiles() domain.Profiles {
	p := domain.Profiles{
		Baseline:  domain.NewTechnologyProfile(domain.Technology{Role: domain.RoleBaseline, Name: "VM (KVM)", ShortName: "VM"}),
		Candidate: domain.NewTechnologyProfile(domain.Technology{Role: domain.RoleCandidate, Name: "Docker", ShortName: "Docker"}),
	}
	p.Baseline.Metrics[domain.MetricStartupTime] = domain.Measured(20, domain.UnitSeconds)
	p.Candidate.Metrics[domain.MetricStartupTime] = domain.Measured(2, domain.UnitSeconds)
	return p
}

func sampleResult() *report.Result {
	p := sampleProfiles()
	set := compare.Profiles(p)
	found := findings.Extract(set, p.Baseline.Technology, p.Candidate.Technology)
	doc := narrative.Synthesize(narrative.Input{
		Title:       "Report",
		Generated:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Profiles:    p,
		Comparisons: set,
		Findings:    found,
	})
	return &report.Result{Profiles: p, Comparisons: set, Findings: found, Report: doc, Text: narrative.Render(doc)}
}

func router(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/report", h.GetReport)
	r.Get("/comparisons", h.GetComparisons)
	r.Get("/findings", h.GetFindings)
	r.Get("/profiles", h.GetProfiles)
	r.Get("/runs", h.ListRuns)
	r.Get("/runs/{run}", h.GetRun)
	return r
}

func do(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandler_LiveEndpoints(t *testing.T) {
	ctrl := &mockController{}
	ctrl.On("Generate", mock.Anything, inputs).Return(sampleResult(), nil)
	r := router(NewHandler(ctrl, inputs, nil))

	t.Run("report json", func(t *testing.T) {
		rec := do(t, r, "/report")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		got := decode[api.Report](t, rec)
		assert.Equal(t, "Report", got.Title)
		require.NotEmpty(t, got.Sections)
		assert.Equal(t, "header", got.Sections[0].ID)
		assert.Contains(t, got.Sections[0].Markdown, "# Report")
	})

	t.Run("report markdown", func(t *testing.T) {
		rec := do(t, r, "/report?format=markdown")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, sampleResult().Text, rec.Body.String())
	})

	t.Run("comparisons", func(t *testing.T) {
		got := decode[[]api.Comparison](t, do(t, r, "/comparisons"))
		require.Len(t, got, len(compare.Polarity))
		assert.Equal(t, "startup_time", got[0].Metric)
		assert.Equal(t, "candidate", got[0].Outcome)
		assert.InDelta(t, 90, got[0].Percentage, 1e-9)
		assert.Equal(t, "inconclusive", got[1].Outcome)
	})

	t.Run("findings", func(t *testing.T) {
		got := decode[[]api.Finding](t, do(t, r, "/findings"))
		require.Len(t, got, 3)
		assert.True(t, got[0].Derived)
		assert.Equal(t, "Isolation", got[1].Title)
	})

	t.Run("profiles", func(t *testing.T) {
		got := decode[api.Profiles](t, do(t, r, "/profiles"))
		assert.Equal(t, "VM", got.Baseline.ShortName)
		assert.Equal(t, api.MetricValue{Value: 2, Unit: "seconds"}, got.Candidate.Metrics["startup_time"])
	})
}

func TestHandler_GenerateFailure(t *testing.T) {
	ctrl := &mockController{}
	ctrl.On("Generate", mock.Anything, inputs).Return(nil, errors.New("table is missing required columns"))
	r := router(NewHandler(ctrl, inputs, nil))

	rec := do(t, r, "/findings")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to generate report\n", rec.Body.String())
}

func TestHandler_Runs(t *testing.T) {
	ctrl := &mockController{}
	runs := &mockHistory{}
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	runs.On("ListRuns", mock.Anything, 20).Return([]store.Run{{ID: "r1", GeneratedAt: at, BaselineName: "VM (KVM)", CandidateName: "Docker"}}, nil)
	runs.On("ListRuns", mock.Anything, 2).Return([]store.Run{}, nil)
	runs.On("GetProfiles", mock.Anything, "r1").Return(sampleProfiles(), nil)
	runs.On("GetProfiles", mock.Anything, "nope").Return(domain.Profiles{}, history.ErrRunNotFound)
	r := router(NewHandler(ctrl, inputs, runs))

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		check          func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "list default limit",
			path:           "/runs",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[[]api.Run](t, rec)
				assert.Equal(t, []api.Run{{ID: "r1", GeneratedAt: at, Baseline: "VM (KVM)", Candidate: "Docker"}}, got)
			},
		},
		{
			name:           "list with limit",
			path:           "/runs?limit=2",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "[]\n", rec.Body.String())
			},
		},
		{
			name:           "invalid limit",
			path:           "/runs?limit=zero",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "get run",
			path:           "/runs/r1",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[api.Analysis](t, rec)
				assert.Equal(t, "r1", got.RunID)
				assert.Equal(t, "startup_time", got.Findings[0].Metric)
				assert.Equal(t, "candidate", got.Comparisons[0].Outcome)
			},
		},
		{
			name:           "unknown run",
			path:           "/runs/nope",
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, tt.path)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
	ctrl.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestHandler_RunsDisabled(t *testing.T) {
	r := router(NewHandler(&mockController{}, inputs, nil))

	assert.Equal(t, http.StatusNotFound, do(t, r, "/runs").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, "/runs/r1").Code)
}
