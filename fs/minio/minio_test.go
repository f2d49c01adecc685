package minio

import (
	"fmt"
	"io/fs"
	"syscall"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/core"
	"github.com/jmgilman/go/ftpfs/fs/minio/internal/errs"
	"github.com/jmgilman/go/ftpfs/fs/minio/internal/pathutil"
	"github.com/jmgilman/go/ftpfs/fs/minio/internal/types"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name: "valid config with credentials",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "homes",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
		},
		{
			name:   "client provided ignores missing credentials",
			config: Config{Client: &minio.Client{}, Bucket: "homes"},
		},
		{
			name:    "missing bucket",
			config:  Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "bucket is required",
		},
		{
			name:    "missing endpoint without client",
			config:  Config{Bucket: "homes", AccessKey: "a", SecretKey: "s"},
			wantErr: "endpoint is required when client is not provided",
		},
		{
			name:    "missing access key without client",
			config:  Config{Endpoint: "localhost:9000", Bucket: "homes", SecretKey: "s"},
			wantErr: "access key is required when client is not provided",
		},
		{
			name:    "missing secret key without client",
			config:  Config{Endpoint: "localhost:9000", Bucket: "homes", AccessKey: "a"},
			wantErr: "secret key is required when client is not provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestNewMinIO(t *testing.T) {
	_, err := NewMinIO(Config{Endpoint: "localhost:9000"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))

	m, err := NewMinIO(Config{
		Endpoint:  "localhost:9000",
		Bucket:    "homes",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Prefix:    "/ftp//users/",
	})
	require.NoError(t, err)
	assert.Equal(t, "ftp/users", m.prefix)
	assert.Equal(t, core.FSTypeRemote, m.Type())
	assert.Equal(t, "ftp/users/alice/file", m.joinPath("alice/file"))
	assert.Equal(t, "ftp/users/etc", m.joinPath("../../etc"))
	assert.Equal(t, "ftp/users", m.joinPath("."))
}

func TestPathutil(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", ""},
		{".", ""},
		{"/", ""},
		{"a/b", "a/b"},
		{"/a/b/", "a/b"},
		{`a\b`, "a/b"},
		{"a/./b//c", "a/b/c"},
		{"../a", "a"},
		{"a/../../b", "b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pathutil.Normalize(tt.name), tt.name)
	}

	assert.Equal(t, "", pathutil.JoinPath("", "."))
	assert.Equal(t, "p", pathutil.JoinPath("p", "/"))
	assert.Equal(t, "a", pathutil.JoinPath("", "a"))
	assert.Equal(t, "p/a", pathutil.JoinPath("p", "a"))

	assert.Equal(t, "", pathutil.DirKey(""))
	assert.Equal(t, "a/b/", pathutil.DirKey("a/b"))

	assert.Nil(t, pathutil.Ancestors("a"))
	assert.Equal(t, []string{"a", "a/b"}, pathutil.Ancestors("a/b/c"))
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", fs.ErrNotExist},
		{"NoSuchBucket", fs.ErrNotExist},
		{"AccessDenied", fs.ErrPermission},
		{"SlowDown", syscall.EAGAIN},
	}
	for _, tt := range tests {
		err := errs.Translate(minio.ErrorResponse{Code: tt.code})
		assert.ErrorIs(t, err, tt.want, tt.code)
	}

	assert.NoError(t, errs.Translate(nil))

	other := fmt.Errorf("boom")
	assert.ErrorIs(t, errs.Translate(other), other)

	assert.NoError(t, errs.PathError("stat", "x", nil))
	var pathErr *fs.PathError
	require.ErrorAs(t, errs.PathError("stat", "x", fs.ErrNotExist), &pathErr)
	assert.Equal(t, "stat", pathErr.Op)
}

func TestNativeErrorMapping(t *testing.T) {
	// Provider errors map onto view error codes.
	notFound := errs.PathError("stat", "x", errs.Translate(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(errors.FromNative(notFound, "stat", "/x")))

	denied := errs.PathError("stat", "x", errs.Translate(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.Equal(t, errors.CodeForbidden, errors.GetCode(errors.FromNative(denied, "stat", "/x")))

	busy := errs.PathError("stat", "x", errs.Translate(minio.ErrorResponse{Code: "SlowDown"}))
	assert.True(t, errors.IsRetryable(errors.FromNative(busy, "stat", "/x")))
}

func TestTypes(t *testing.T) {
	mod := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	file := types.File("a.txt", 12, mod)
	assert.Equal(t, "a.txt", file.Name())
	assert.Equal(t, int64(12), file.Size())
	assert.Equal(t, mod, file.ModTime())
	assert.False(t, file.IsDir())
	assert.True(t, file.Mode().IsRegular())
	assert.Nil(t, file.Sys())

	dir := types.Dir("sub", time.Time{})
	assert.True(t, dir.IsDir())
	assert.Equal(t, int64(0), dir.Size())

	entry := types.Entry(dir)
	assert.Equal(t, "sub", entry.Name())
	assert.True(t, entry.IsDir())
	assert.Equal(t, fs.ModeDir, entry.Type())
	info, err := entry.Info()
	require.NoError(t, err)
	assert.Same(t, dir, info)
}
