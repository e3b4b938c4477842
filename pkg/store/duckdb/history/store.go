// Package history persists the resolved profiles of every report run in DuckDB.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/de-tools/isobench/pkg/adapters"
	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/models/store"
	"github.com/de-tools/isobench/pkg/store/duckdb"
	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("run not found")

const (
	runsTable       = "benchmark_runs"
	metricsTable    = "metric_values"
	attributesTable = "profile_attributes"
)

var runColumns = []string{
	"id", "generated_at", "baseline_name", "baseline_short", "candidate_name", "candidate_short",
}

// Store records runs and reads them back. Only profiles are stored; comparisons and
// findings are derived again on read.
type Store interface {
	Record(ctx context.Context, generated time.Time, profiles domain.Profiles) (string, error)
	ListRuns(ctx context.Context, limit int) ([]store.Run, error)
	GetProfiles(ctx context.Context, runID string) (domain.Profiles, error)
}

type historyStore struct {
	db    *sql.DB
	newID func() string
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db, newID: uuid.NewString}, nil
}

func (s *historyStore) Record(ctx context.Context, generated time.Time, profiles domain.Profiles) (string, error) {
	id := s.newID()
	run := adapters.MapDomainProfilesToStoreRun(id, generated, profiles)

	err := duckdb.InTransaction(ctx, s.db, func(ctx context.Context) error {
		exec := duckdb.ExecerFor(ctx, s.db)

		query, args, err := sq.Insert(runsTable).
			Columns(runColumns...).
			Values(run.ID, run.GeneratedAt, run.BaselineName, run.BaselineShort, run.CandidateName, run.CandidateShort).
			ToSql()
		if err != nil {
			return fmt.Errorf("build run insert: %w", err)
		}
		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		metrics := append(
			adapters.MapDomainProfileToStoreMetrics(id, profiles.Baseline),
			adapters.MapDomainProfileToStoreMetrics(id, profiles.Candidate)...,
		)
		if len(metrics) > 0 {
			ins := sq.Insert(metricsTable).Columns("run_id", "role", "metric", "value", "unit")
			for _, m := range metrics {
				ins = ins.Values(m.RunID, m.Role, m.Metric, m.Value, m.Unit)
			}
			if err := execBuilder(ctx, exec, ins); err != nil {
				return fmt.Errorf("insert metric values: %w", err)
			}
		}

		attrs := append(
			adapters.MapDomainProfileToStoreAttributes(id, profiles.Baseline),
			adapters.MapDomainProfileToStoreAttributes(id, profiles.Candidate)...,
		)
		if len(attrs) > 0 {
			ins := sq.Insert(attributesTable).Columns("run_id", "role", "name", "value")
			for _, a := range attrs {
				ins = ins.Values(a.RunID, a.Role, a.Key, a.Value)
			}
			if err := execBuilder(ctx, exec, ins); err != nil {
				return fmt.Errorf("insert attributes: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func execBuilder(ctx context.Context, exec duckdb.Execer, b sq.InsertBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = exec.ExecContext(ctx, query, args...)
	return err
}

// ListRuns returns the most recent runs first. A non-positive limit returns every run.
func (s *historyStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	q := sq.Select(runColumns...).From(runsTable).OrderBy("generated_at DESC", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build runs query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []store.Run{}
	for rows.Next() {
		var r store.Run
		if err := rows.Scan(&r.ID, &r.GeneratedAt, &r.BaselineName, &r.BaselineShort, &r.CandidateName, &r.CandidateShort); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *historyStore) GetProfiles(ctx context.Context, runID string) (domain.Profiles, error) {
	query, args, err := sq.Select(runColumns...).From(runsTable).Where(sq.Eq{"id": runID}).ToSql()
	if err != nil {
		return domain.Profiles{}, fmt.Errorf("build run query: %w", err)
	}

	var run store.Run
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&run.ID, &run.GeneratedAt, &run.BaselineName, &run.BaselineShort, &run.CandidateName, &run.CandidateShort)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profiles{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return domain.Profiles{}, fmt.Errorf("query run: %w", err)
	}

	metrics, err := s.metrics(ctx, runID)
	if err != nil {
		return domain.Profiles{}, err
	}
	attrs, err := s.attributes(ctx, runID)
	if err != nil {
		return domain.Profiles{}, err
	}
	return adapters.MapStoreRunToDomainProfiles(run, metrics, attrs), nil
}

func (s *historyStore) metrics(ctx context.Context, runID string) ([]store.MetricRecord, error) {
	query, args, err := sq.Select("run_id", "role", "metric", "value", "unit").
		From(metricsTable).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("role", "metric").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build metrics query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query metric values: %w", err)
	}
	defer rows.Close()

	var out []store.MetricRecord
	for rows.Next() {
		var m store.MetricRecord
		var unit sql.NullString
		if err := rows.Scan(&m.RunID, &m.Role, &m.Metric, &m.Value, &unit); err != nil {
			return nil, fmt.Errorf("scan metric value: %w", err)
		}
		m.Unit = unit.String
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *historyStore) attributes(ctx context.Context, runID string) ([]store.AttributeRecord, error) {
	query, args, err := sq.Select("run_id", "role", "name", "value").
		From(attributesTable).
		Where(sq.Eq{"run_id": runID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build attributes query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attributes: %w", err)
	}
	defer rows.Close()

	var out []store.AttributeRecord
	for rows.Next() {
		var a store.AttributeRecord
		var value sql.NullString
		if err := rows.Scan(&a.RunID, &a.Role, &a.Key, &value); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}
		a.Value = value.String
		out = append(out, a)
	}
	return out, rows.Err()
}
