// Package minio provides a MinIO/S3-compatible implementation of the core.FS interface.
//
// Object stores have no directories. The provider treats every key prefix
// ending in "/" as a directory and writes an empty "name/" marker object
// for directories created with Mkdir, so empty home directories survive.
package minio

import (
	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/ftpfs/errors"
)

// Config holds MinIO filesystem configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g., "localhost:9000").
	Endpoint string

	// Bucket is the S3 bucket name.
	Bucket string

	// AccessKey is the access key ID for authentication.
	AccessKey string

	// SecretKey is the secret access key for authentication.
	SecretKey string

	// UseSSL enables HTTPS connections.
	UseSSL bool

	// Prefix scopes every key, e.g. "ftp/homes". It behaves like a chroot.
	Prefix string

	// Client is an optional pre-configured MinIO client.
	// If provided, Endpoint, AccessKey and SecretKey are ignored.
	Client *minio.Client
}

// validate checks that either Client or the connection fields are set.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return errors.New(errors.CodeInvalidConfig, "bucket is required")
	}
	if c.Client != nil {
		return nil
	}

	missing := ""
	switch {
	case c.Endpoint == "":
		missing = "endpoint"
	case c.AccessKey == "":
		missing = "access key"
	case c.SecretKey == "":
		missing = "secret key"
	}
	if missing != "" {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "%s is required when client is not provided", missing),
			"bucket", c.Bucket,
		)
	}
	return nil
}
