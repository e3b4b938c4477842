package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/isobench/pkg/models/domain"
)

var ErrMissingColumns = errors.New("table is missing required columns")

// LabelRule maps a canonical metric to the label substrings that identify its row.
// Matching is case-insensitive containment; a label containing any Exclude substring
// never matches.
type LabelRule struct {
	Metric   domain.MetricName
	Include  []string
	Exclude  []string
	Required bool
}

func (r LabelRule) Matches(label string) bool {
	l := strings.ToLower(label)
	for _, ex := range r.Exclude {
		if ex != "" && strings.Contains(l, strings.ToLower(ex)) {
			return false
		}
	}
	for _, in := range r.Include {
		if in != "" && strings.Contains(l, strings.ToLower(in)) {
			return true
		}
	}
	return false
}

// TableSchema describes a two-column (label, value) load-test table.
type TableSchema struct {
	LabelColumns []string
	ValueColumns []string
	Rules        []LabelRule
}

// DefaultTableSchema accepts the ab summary tables in both Chinese and English.
func DefaultTableSchema() TableSchema {
	return TableSchema{
		LabelColumns: []string{"指标", "metric"},
		ValueColumns: []string{"值", "value"},
		Rules: []LabelRule{
			{Metric: domain.MetricQPS, Include: []string{"QPS", "requests per second"}, Required: true},
			{
				Metric:   domain.MetricAvgResponseTime,
				Include:  []string{"平均响应时间", "average response time", "time per request"},
				Exclude:  []string{"并发", "concurrent"},
				Required: true,
			},
			{Metric: domain.MetricFailedRequests, Include: []string{"失败请求数", "failed requests"}},
			{Metric: domain.MetricTransferRate, Include: []string{"传输速率", "transfer rate"}},
		},
	}
}

// Table is the parsed content of one load-test table.
type Table struct {
	Path    string
	Values  map[domain.MetricName]string
	Missing []domain.MetricName // rules without a matching row, in rule order
	rules   []LabelRule
}

// MissingRequired lists the required metrics that no row matched.
func (t *Table) MissingRequired() []domain.MetricName {
	var out []domain.MetricName
	for _, r := range t.rules {
		if !r.Required {
			continue
		}
		if _, ok := t.Values[r.Metric]; !ok {
			out = append(out, r.Metric)
		}
	}
	return out
}

// ParseTable maps table rows to metrics. The first record is the header. Each row is
// assigned to the first rule that matches its label; a later row for the same metric
// replaces an earlier one.
func ParseTable(path string, records [][]string, schema TableSchema) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty table: %w", path, ErrMissingColumns)
	}

	header := records[0]
	labelIdx := columnIndex(header, schema.LabelColumns)
	valueIdx := columnIndex(header, schema.ValueColumns)

	var missing []string
	if labelIdx < 0 {
		missing = append(missing, strings.Join(schema.LabelColumns, "|"))
	}
	if valueIdx < 0 {
		missing = append(missing, strings.Join(schema.ValueColumns, "|"))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %v: %w", path, missing, ErrMissingColumns)
	}

	t := &Table{
		Path:   path,
		Values: make(map[domain.MetricName]string),
		rules:  schema.Rules,
	}

	for _, row := range records[1:] {
		if labelIdx >= len(row) || valueIdx >= len(row) {
			continue
		}
		label := row[labelIdx]
		for _, rule := range schema.Rules {
			if rule.Matches(label) {
				t.Values[rule.Metric] = strings.TrimSpace(row[valueIdx])
				break
			}
		}
	}

	for _, rule := range schema.Rules {
		if _, ok := t.Values[rule.Metric]; !ok {
			t.Missing = append(t.Missing, rule.Metric)
		}
	}

	return t, nil
}

func columnIndex(header []string, names []string) int {
	for i, col := range header {
		col = strings.TrimSpace(col)
		for _, name := range names {
			if strings.EqualFold(col, name) {
				return i
			}
		}
	}
	return -1
}
