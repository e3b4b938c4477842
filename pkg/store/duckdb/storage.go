package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const RunsTableSchema = `
	CREATE TABLE IF NOT EXISTS benchmark_runs (
		id VARCHAR PRIMARY KEY,
		generated_at TIMESTAMP NOT NULL,
		baseline_name VARCHAR NOT NULL,
		baseline_short VARCHAR NOT NULL,
		candidate_name VARCHAR NOT NULL,
		candidate_short VARCHAR NOT NULL,
		recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`
const MetricValuesTableSchema = `
	CREATE TABLE IF NOT EXISTS metric_values (
		run_id VARCHAR NOT NULL,
		role VARCHAR NOT NULL,
		metric VARCHAR NOT NULL,
		value DOUBLE NOT NULL,
		unit VARCHAR,
		PRIMARY KEY (run_id, role, metric)
	);
`
const AttributesTableSchema = `
	CREATE TABLE IF NOT EXISTS profile_attributes (
		run_id VARCHAR NOT NULL,
		role VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		value VARCHAR,
		PRIMARY KEY (run_id, role, name)
	);
`

var bootQueries = []string{
	RunsTableSchema,
	MetricValuesTableSchema,
	AttributesTableSchema,
}

type Settings struct {
	DbPath  string
	Threads int
}

// NewDB opens the history database and makes sure its tables exist.
func NewDB(settings Settings) (*sql.DB, error) {
	threads := settings.Threads
	if threads <= 0 {
		threads = 4
	}
	dsn := fmt.Sprintf("%s?threads=%d", settings.DbPath, threads)

	c, err := duckdb.NewConnector(dsn, func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			if _, err := exec.ExecContext(context.Background(), query, nil); err != nil {
				return fmt.Errorf("bootstrap schema: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("open duckdb %q: %w", settings.DbPath, err)
	}

	return sql.OpenDB(c), nil
}
