package minio

import "errors"

// Config represents the configuration for the MinIO client.
type Config struct {
	// Endpoint is the S3-compatible object storage endpoint,
	// e.g. "localhost:9000" or "s3.amazonaws.com".
	Endpoint string

	// AccessKeyID is the access key for authentication.
	AccessKeyID string

	// SecretAccessKey is the secret key for authentication.
	SecretAccessKey string

	// UseSSL determines whether to use HTTPS (true) or HTTP (false).
	UseSSL bool

	// Bucket is the bucket objects are stored in.
	Bucket string

	// PublicBaseURL overrides the URL prefix used when building public object
	// URLs. Defaults to scheme://endpoint.
	PublicBaseURL string
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("minio: endpoint is required")
	}
	if c.AccessKeyID == "" {
		return errors.New("minio: access key ID is required")
	}
	if c.SecretAccessKey == "" {
		return errors.New("minio: secret access key is required")
	}
	if c.Bucket == "" {
		return errors.New("minio: bucket is required")
	}
	return nil
}
