// Package errs translates MinIO errors into io/fs errors.
package errs

import (
	"fmt"
	"io/fs"
	"syscall"

	"github.com/minio/minio-go/v7"
)

// Translate converts MinIO error responses to their io/fs equivalents so
// callers can test them with errors.Is. Other errors are wrapped unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	case "SlowDown", "ServiceUnavailable", "XMinioServerNotInitialized":
		return fmt.Errorf("minio: %w: %w", syscall.EAGAIN, err)
	}

	return fmt.Errorf("minio: %w", err)
}

// PathError wraps an error in a fs.PathError for the given operation and path.
// If the error is nil, returns nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}
