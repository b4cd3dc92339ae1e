package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Client wraps the MinIO client for storing rendered score pages.
type Client struct {
	client *minio.Client
	config *Config
	logger *zap.Logger
}

// NewClient creates a new MinIO client.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("minio: nil config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	client := &Client{
		client: minioClient,
		config: cfg,
		logger: logger,
	}

	if logger != nil {
		logger.Info("minio client initialized",
			zap.String("endpoint", cfg.Endpoint),
			zap.String("bucket", cfg.Bucket),
			zap.Bool("use_ssl", cfg.UseSSL),
		)
	}

	return client, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.config.Bucket)
	if err != nil {
		return fmt.Errorf("minio: failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := c.client.MakeBucket(ctx, c.config.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %s: %w", c.config.Bucket, err)
	}

	if c.logger != nil {
		c.logger.Info("bucket created", zap.String("bucket", c.config.Bucket))
	}
	return nil
}

// PutObject uploads an object to the configured bucket.
func (c *Client) PutObject(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	if objectName == "" {
		return fmt.Errorf("minio: empty object name")
	}

	info, err := c.client.PutObject(ctx, c.config.Bucket, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("minio: failed to put object %s: %w", objectName, err)
	}

	if c.logger != nil {
		c.logger.Info("object uploaded",
			zap.String("bucket", c.config.Bucket),
			zap.String("object", objectName),
			zap.Int64("size", info.Size),
		)
	}
	return nil
}

// PublicURL returns the public URL for an object in the configured bucket.
func (c *Client) PublicURL(objectName string) string {
	base := c.config.PublicBaseURL
	if base == "" {
		scheme := "http"
		if c.config.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, c.config.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), c.config.Bucket, objectName)
}
