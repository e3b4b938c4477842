package resolver

import (
	"testing"

	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable_MatchesLabelsBySubstring(t *testing.T) {
	records := [][]string{
		{"指标", "值"},
		{"QPS (每秒请求数)", "1520.33"},
		{"平均响应时间(并发)", "0.66"},
		{"平均响应时间(ms)", "65.8"},
		{"失败请求数", "0"},
		{"传输速率(KB/s)", "1234.5"},
		{"总请求数", "10000"},
	}

	table, err := ParseTable("stress_vm_results.csv", records, DefaultTableSchema())

	require.NoError(t, err)
	assert.Equal(t, "1520.33", table.Values[domain.MetricQPS])
	assert.Equal(t, "65.8", table.Values[domain.MetricAvgResponseTime])
	assert.Equal(t, "0", table.Values[domain.MetricFailedRequests])
	assert.Equal(t, "1234.5", table.Values[domain.MetricTransferRate])
	assert.Empty(t, table.Missing)
	assert.Empty(t, table.MissingRequired())
}

func TestParseTable_EnglishHeadersAnyColumnOrder(t *testing.T) {
	records := [][]string{
		{"Value", "Metric"},
		{"980", "Requests per second"},
		{"12.5", "Time per request (mean, across all concurrent requests)"},
		{"102.1", "Time per request (mean)"},
	}

	table, err := ParseTable("stress.csv", records, DefaultTableSchema())

	require.NoError(t, err)
	assert.Equal(t, "980", table.Values[domain.MetricQPS])
	assert.Equal(t, "102.1", table.Values[domain.MetricAvgResponseTime])
	assert.Equal(t, []domain.MetricName{domain.MetricFailedRequests, domain.MetricTransferRate}, table.Missing)
	assert.Empty(t, table.MissingRequired())
}

func TestParseTable_ReportsMissingRequired(t *testing.T) {
	records := [][]string{
		{"metric", "value"},
		{"失败请求数", "3"},
	}

	table, err := ParseTable("stress.csv", records, DefaultTableSchema())

	require.NoError(t, err)
	assert.Equal(t, []domain.MetricName{domain.MetricQPS, domain.MetricAvgResponseTime}, table.MissingRequired())
}

func TestParseTable_MissingColumns(t *testing.T) {
	_, err := ParseTable("stress.csv", [][]string{{"name", "value"}, {"QPS", "1"}}, DefaultTableSchema())
	assert.ErrorIs(t, err, ErrMissingColumns)

	_, err = ParseTable("stress.csv", nil, DefaultTableSchema())
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestParseTable_SkipsShortRows(t *testing.T) {
	records := [][]string{
		{"metric", "value"},
		{"QPS"},
		{"QPS", "77"},
	}

	table, err := ParseTable("stress.csv", records, DefaultTableSchema())

	require.NoError(t, err)
	assert.Equal(t, "77", table.Values[domain.MetricQPS])
}

func TestLabelRule_Matches(t *testing.T) {
	rule := LabelRule{Include: []string{"average response time"}, Exclude: []string{"concurrent"}}

	assert.True(t, rule.Matches("Average Response Time (ms)"))
	assert.False(t, rule.Matches("average response time, concurrent"))
	assert.False(t, rule.Matches("QPS"))
}
