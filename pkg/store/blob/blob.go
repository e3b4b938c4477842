// Package blob publishes rendered reports to object storage.
package blob

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	SchemeS3  = "s3"
	SchemeGCS = "gs"

	DefaultObjectName = "analysis_report.md"
	contentType       = "text/markdown; charset=utf-8"
)

var ErrUnsupportedScheme = errors.New("unsupported publish scheme")

// Location is a parsed object URI such as s3://bucket/reports/run.md.
type Location struct {
	Scheme string
	Bucket string
	Key    string
}

func (l Location) String() string {
	return fmt.Sprintf("%s://%s/%s", l.Scheme, l.Bucket, l.Key)
}

// ParseURI parses an object URI such as s3://bucket/key. A URI that names only a bucket or ends with a
// slash gets DefaultObjectName appended.
func ParseURI(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse publish uri: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme == "" {
		return Location{}, fmt.Errorf("publish uri %q has no scheme", raw)
	}
	if u.Host == "" {
		return Location{}, fmt.Errorf("publish uri %q has no bucket", raw)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		key = path.Join(key, DefaultObjectName)
	}
	return Location{Scheme: scheme, Bucket: u.Host, Key: key}, nil
}

// Publisher uploads one report body and reports where it went.
type Publisher interface {
	Publish(ctx context.Context, body []byte) (string, error)
	Close() error
}

type Options struct {
	AWSProfile string
	AWSRegion  string
}

// NewPublisher builds the publisher registered for the URI scheme.
func NewPublisher(ctx context.Context, uri string, opts Options) (Publisher, error) {
	loc, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	return DefaultRegistry().Create(ctx, loc, opts)
}
