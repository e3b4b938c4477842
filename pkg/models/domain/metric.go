package domain

// Unit is the canonical unit a MetricValue is expressed in.
type Unit int

const (
	UnitNone Unit = iota
	UnitBytes
	UnitKilobytes
	UnitMegabytes
	UnitGigabytes
	UnitPercent
	UnitMilliseconds
	UnitSeconds
	UnitCount
	UnitRequestsPerSecond
	UnitKilobytesPerSecond
)

var unitSymbols = map[Unit]string{
	UnitNone:               "",
	UnitBytes:              "B",
	UnitKilobytes:          "KB",
	UnitMegabytes:          "MB",
	UnitGigabytes:          "GB",
	UnitPercent:            "%",
	UnitMilliseconds:       "ms",
	UnitSeconds:            "s",
	UnitCount:              "",
	UnitRequestsPerSecond:  "req/s",
	UnitKilobytesPerSecond: "KB/s",
}

func (u Unit) String() string {
	return unitSymbols[u]
}

var unitNames = map[Unit]string{
	UnitNone:               "none",
	UnitBytes:              "bytes",
	UnitKilobytes:          "kilobytes",
	UnitMegabytes:          "megabytes",
	UnitGigabytes:          "gigabytes",
	UnitPercent:            "percent",
	UnitMilliseconds:       "milliseconds",
	UnitSeconds:            "seconds",
	UnitCount:              "count",
	UnitRequestsPerSecond:  "requests_per_second",
	UnitKilobytesPerSecond: "kilobytes_per_second",
}

// Name is the stable identifier used when a unit is persisted or exported.
func (u Unit) Name() string {
	return unitNames[u]
}

func UnitByName(name string) Unit {
	for u, n := range unitNames {
		if n == name {
			return u
		}
	}
	return UnitNone
}

// MetricName identifies one logical measurement.
type MetricName string

const (
	MetricStartupTime     MetricName = "startup_time"
	MetricMemoryMB        MetricName = "memory_mb"
	MetricDiskBytes       MetricName = "disk_bytes"
	MetricCPUCores        MetricName = "cpu_cores"
	MetricCPUPercent      MetricName = "cpu_percent"
	MetricQPS             MetricName = "qps"
	MetricAvgResponseTime MetricName = "avg_response_time"
	MetricFailedRequests  MetricName = "failed_requests"
	MetricTransferRate    MetricName = "transfer_rate"
)

// StressMetrics are the metrics sourced from the load-test tables.
var StressMetrics = []MetricName{
	MetricQPS,
	MetricAvgResponseTime,
	MetricFailedRequests,
	MetricTransferRate,
}

// MetricValue is a resolved measurement. Present is false when no candidate source
// produced a value; a present zero is a real measurement of zero.
type MetricValue struct {
	Value   float64
	Unit    Unit
	Present bool
}

func Measured(value float64, unit Unit) MetricValue {
	return MetricValue{Value: value, Unit: unit, Present: true}
}

func Absent(unit Unit) MetricValue {
	return MetricValue{Unit: unit}
}

// Float collapses the value to a plain number. Absent values read as 0, which is the only
// point where "no data" and "measured zero" become indistinguishable.
func (m MetricValue) Float() float64 {
	if !m.Present {
		return 0
	}
	return m.Value
}
