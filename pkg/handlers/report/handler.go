package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/isobench/pkg/adapters"
	"github.com/de-tools/isobench/pkg/models/api"
	"github.com/de-tools/isobench/pkg/services/compare"
	"github.com/de-tools/isobench/pkg/services/findings"
	"github.com/de-tools/isobench/pkg/services/report"
	"github.com/de-tools/isobench/pkg/services/resolver"
	"github.com/de-tools/isobench/pkg/store/duckdb/history"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const defaultRunsLimit = 20

// Handler serves the report of the configured result directories. Every request
// re-reads the artifacts so the API always reflects what is on disk.
type Handler struct {
	ctrl    report.Controller
	inputs  resolver.Inputs
	history history.Store // optional
}

func NewHandler(ctrl report.Controller, inputs resolver.Inputs, runs history.Store) *Handler {
	return &Handler{ctrl: ctrl, inputs: inputs, history: runs}
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*report.Result, bool) {
	res, err := h.ctrl.Generate(r.Context(), h.inputs)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to generate report")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return nil, false
	}
	return res, true
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	res, ok := h.generate(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		if _, err := w.Write([]byte(res.Text)); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write report")
		}
		return
	}
	writeJSON(w, r, adapters.MapDomainReportToApi(res.Report))
}

func (h *Handler) GetComparisons(w http.ResponseWriter, r *http.Request) {
	res, ok := h.generate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapDomainComparisonsToApi(res.Comparisons))
}

func (h *Handler) GetFindings(w http.ResponseWriter, r *http.Request) {
	res, ok := h.generate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapDomainFindingsToApi(res.Findings))
}

func (h *Handler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	res, ok := h.generate(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapDomainProfilesToApi(res.Profiles))
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "run history is not enabled", http.StatusNotFound)
		return
	}

	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "invalid 'limit'. Expected a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := h.history.ListRuns(r.Context(), limit)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to list runs")
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return
	}
	response := make([]api.Run, 0, len(runs))
	for _, run := range runs {
		response = append(response, adapters.MapStoreRunToApi(run))
	}
	writeJSON(w, r, response)
}

// GetRun rebuilds the analysis of a recorded run from its stored profiles.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "run history is not enabled", http.StatusNotFound)
		return
	}
	id := chi.URLParam(r, "run")

	profiles, err := h.history.GetProfiles(r.Context(), id)
	if errors.Is(err, history.ErrRunNotFound) {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("run", id).Msg("failed to load run")
		http.Error(w, "failed to load run", http.StatusInternalServerError)
		return
	}

	set := compare.Profiles(profiles)
	writeJSON(w, r, api.Analysis{
		RunID:       id,
		Profiles:    adapters.MapDomainProfilesToApi(profiles),
		Comparisons: adapters.MapDomainComparisonsToApi(set),
		Findings: adapters.MapDomainFindingsToApi(
			findings.Extract(set, profiles.Baseline.Technology, profiles.Candidate.Technology),
		),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
