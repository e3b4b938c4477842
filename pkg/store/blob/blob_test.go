package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    Location
		wantErr bool
	}{
		{name: "s3 object", uri: "s3://reports/vm/run.md", want: Location{Scheme: "s3", Bucket: "reports", Key: "vm/run.md"}},
		{name: "gcs object", uri: "gs://reports/run.md", want: Location{Scheme: "gs", Bucket: "reports", Key: "run.md"}},
		{name: "bucket only", uri: "s3://reports", want: Location{Scheme: "s3", Bucket: "reports", Key: DefaultObjectName}},
		{name: "prefix", uri: "gs://reports/daily/", want: Location{Scheme: "gs", Bucket: "reports", Key: "daily/" + DefaultObjectName}},
		{name: "upper scheme", uri: "S3://reports/a.md", want: Location{Scheme: "s3", Bucket: "reports", Key: "a.md"}},
		{name: "no scheme", uri: "reports/a.md", wantErr: true},
		{name: "no bucket", uri: "s3:///a.md", wantErr: true},
		{name: "garbage", uri: "://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	factory := func(context.Context, Location, Options) (Publisher, error) {
		return NewGCSPublisher(nil, Location{}), nil
	}

	require.NoError(t, r.Register("mem", factory))
	assert.Error(t, r.Register("mem", factory))
	assert.Error(t, r.Register("", factory))
	assert.Error(t, r.Register("x", nil))

	p, err := r.Create(context.Background(), Location{Scheme: "mem"}, Options{})
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = r.Create(context.Background(), Location{Scheme: "ftp"}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	assert.Equal(t, []string{"gs", "s3"}, DefaultRegistry().ListSchemes())
}

func TestNewPublisher_UnsupportedScheme(t *testing.T) {
	_, err := NewPublisher(context.Background(), "ftp://host/a.md", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestS3Publisher_Publish(t *testing.T) {
	// Given
	client := &mockS3{}
	var got *s3.PutObjectInput
	client.On("PutObject", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*s3.PutObjectInput) }).
		Return(&s3.PutObjectOutput{}, nil)
	p := NewS3Publisher(client, Location{Scheme: "s3", Bucket: "reports", Key: "run.md"})

	// When
	loc, err := p.Publish(context.Background(), []byte("# title"))

	// Then
	require.NoError(t, err)
	assert.Equal(t, "s3://reports/run.md", loc)
	client.AssertNumberOfCalls(t, "PutObject", 1)
	require.NotNil(t, got)
	assert.Equal(t, "reports", *got.Bucket)
	assert.Equal(t, "run.md", *got.Key)
	assert.Equal(t, int64(7), *got.ContentLength)
	assert.Equal(t, contentType, *got.ContentType)
	body, err := io.ReadAll(got.Body)
	require.NoError(t, err)
	assert.Equal(t, "# title", string(body))
	assert.NoError(t, p.Close())
}

func TestS3Publisher_Error(t *testing.T) {
	client := &mockS3{}
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))
	p := NewS3Publisher(client, Location{Scheme: "s3", Bucket: "reports", Key: "run.md"})

	_, err := p.Publish(context.Background(), []byte("x"))

	assert.ErrorContains(t, err, "put object s3://reports/run.md: access denied")
}

type memWriter struct {
	bytes.Buffer
	closed   bool
	closeErr error
}

func (w *memWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestGCSPublisher_Publish(t *testing.T) {
	// Given
	w := &memWriter{}
	var gotBucket, gotObject string
	open := func(_ context.Context, bucket, object string) io.WriteCloser {
		gotBucket, gotObject = bucket, object
		return w
	}
	p := NewGCSPublisher(open, Location{Scheme: "gs", Bucket: "reports", Key: "daily/run.md"})

	// When
	loc, err := p.Publish(context.Background(), []byte("# report"))

	// Then
	require.NoError(t, err)
	assert.Equal(t, "gs://reports/daily/run.md", loc)
	assert.Equal(t, "reports", gotBucket)
	assert.Equal(t, "daily/run.md", gotObject)
	assert.Equal(t, "# report", w.String())
	assert.True(t, w.closed)
	assert.NoError(t, p.Close())
}

func TestGCSPublisher_CloseError(t *testing.T) {
	w := &memWriter{closeErr: errors.New("precondition failed")}
	p := NewGCSPublisher(func(context.Context, string, string) io.WriteCloser { return w },
		Location{Scheme: "gs", Bucket: "b", Key: "k"})

	_, err := p.Publish(context.Background(), []byte("x"))

	assert.ErrorContains(t, err, "finalize object gs://b/k: precondition failed")
}
