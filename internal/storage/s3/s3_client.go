package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
)

// Client reads documents from an S3 or S3-compatible bucket.
type Client struct {
	api        *s3.Client
	downloader *manager.Downloader
}

// NewClient creates an S3-backed ObjectStorage implementation.
func NewClient(ctx context.Context, cfg *config.StorageConfig) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &Client{api: client, downloader: manager.NewDownloader(client)}, nil
}

// httpStatusError is satisfied by SDK response errors.
type httpStatusError interface {
	HTTPStatusCode() int
}

func (c *Client) Download(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error) {
	head, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError(err, bucket, key)
	}
	if size := aws.ToInt64(head.ContentLength); size > maxBytes {
		return nil, fmt.Errorf("%w: s3://%s/%s is %d bytes", domain.ErrDocumentTooLarge, bucket, key, size)
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, aws.ToInt64(head.ContentLength)))
	_, err = c.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError(err, bucket, key)
	}
	if int64(len(buf.Bytes())) > maxBytes {
		return nil, fmt.Errorf("%w: s3://%s/%s", domain.ErrDocumentTooLarge, bucket, key)
	}
	return buf.Bytes(), nil
}

func mapError(err error, bucket, key string) error {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	var status httpStatusError
	if errors.As(err, &nsk) || errors.As(err, &nf) || (errors.As(err, &status) && status.HTTPStatusCode() == 404) {
		return fmt.Errorf("%w: s3://%s/%s", domain.ErrObjectNotFound, bucket, key)
	}
	return domain.NewUpstreamError("s3", fmt.Errorf("s3 download: %w", err))
}

func (c *Client) Close() error { return nil }
