package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
)

// Client reads documents from Google Cloud Storage.
type Client struct {
	client *storage.Client
}

// NewClient creates a GCS-backed ObjectStorage using application default
// credentials. cfg.Endpoint points the client at an emulator.
func NewClient(ctx context.Context, cfg *config.StorageConfig) (*Client, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &Client{client: client}, nil
}

func (c *Client) Download(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error) {
	r, err := c.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, fmt.Errorf("%w: gs://%s/%s", domain.ErrObjectNotFound, bucket, key)
		}
		return nil, domain.NewUpstreamError("gcs", fmt.Errorf("opening gs://%s/%s: %w", bucket, key, err))
	}
	defer func() { _ = r.Close() }()

	if r.Attrs.Size > maxBytes {
		return nil, fmt.Errorf("%w: gs://%s/%s is %d bytes", domain.ErrDocumentTooLarge, bucket, key, r.Attrs.Size)
	}

	// Attrs.Size can lag a concurrent overwrite, so the read is capped too.
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, domain.NewUpstreamError("gcs", fmt.Errorf("reading gs://%s/%s: %w", bucket, key, err))
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: gs://%s/%s", domain.ErrDocumentTooLarge, bucket, key)
	}
	return data, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
