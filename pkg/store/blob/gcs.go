package blob

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// WriterFunc opens a writer for one object.
type WriterFunc func(ctx context.Context, bucket, object string) io.WriteCloser

type gcsPublisher struct {
	open   WriterFunc
	loc    Location
	closer io.Closer
}

func NewGCSPublisher(open WriterFunc, loc Location) Publisher {
	return &gcsPublisher{open: open, loc: loc}
}

func newGCSPublisher(ctx context.Context, loc Location) (Publisher, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	open := func(ctx context.Context, bucket, object string) io.WriteCloser {
		w := client.Bucket(bucket).Object(object).NewWriter(ctx)
		w.ContentType = contentType
		return w
	}
	return &gcsPublisher{open: open, loc: loc, closer: client}, nil
}

func (p *gcsPublisher) Publish(ctx context.Context, body []byte) (string, error) {
	w := p.open(ctx, p.loc.Bucket, p.loc.Key)
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", p.loc, err)
	}
	// The upload is only committed on Close.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", p.loc, err)
	}
	return p.loc.String(), nil
}

func (p *gcsPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
