package blob

import (
	"bytes"
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const DefaultRegion = "us-east-1"

// PutObjectAPI is the part of the S3 client used for publishing.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3Publisher struct {
	client PutObjectAPI
	loc    Location
}

func NewS3Publisher(client PutObjectAPI, loc Location) Publisher {
	return &s3Publisher{client: client, loc: loc}
}

func newS3Client(ctx context.Context, opts Options) (*s3.Client, error) {
	region := opts.AWSRegion
	if region == "" {
		region = DefaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithDefaultRegion(region)}
	if opts.AWSProfile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.AWSProfile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (p *s3Publisher) Publish(ctx context.Context, body []byte) (string, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        awssdk.String(p.loc.Bucket),
		Key:           awssdk.String(p.loc.Key),
		Body:          bytes.NewReader(body),
		ContentLength: awssdk.Int64(int64(len(body))),
		ContentType:   awssdk.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", p.loc, err)
	}
	return p.loc.String(), nil
}

func (p *s3Publisher) Close() error { return nil }
