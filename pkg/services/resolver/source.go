package resolver

import (
	"github.com/de-tools/isobench/pkg/models/domain"
	"github.com/de-tools/isobench/pkg/store/fs"
)

// Source yields the raw text of one candidate measurement. ok is false when the
// candidate is missing, unreadable or empty.
type Source interface {
	Read() (raw string, ok bool)
	String() string
}

// FileSource reads a single-value text file.
type FileSource string

func (f FileSource) Read() (string, bool) {
	raw, err := fs.ReadText(string(f))
	if err != nil || raw == "" {
		return "", false
	}
	return raw, true
}

func (f FileSource) String() string {
	return string(f)
}

// TableSource reads one metric out of a loaded load-test table. A nil table behaves as
// a missing file.
type TableSource struct {
	Table  *Table
	Metric domain.MetricName
}

func (t TableSource) Read() (string, bool) {
	if t.Table == nil {
		return "", false
	}
	raw, ok := t.Table.Values[t.Metric]
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

func (t TableSource) String() string {
	if t.Table == nil {
		return "table(<none>):" + string(t.Metric)
	}
	return "table(" + t.Table.Path + "):" + string(t.Metric)
}

// Literal is a fixed raw value, mostly useful for tests and overrides.
type Literal string

func (l Literal) Read() (string, bool) {
	if l == "" {
		return "", false
	}
	return string(l), true
}

func (l Literal) String() string {
	return "literal(" + string(l) + ")"
}
