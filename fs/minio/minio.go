package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	ftperrors "github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/core"
	"github.com/jmgilman/go/ftpfs/fs/minio/internal/errs"
	"github.com/jmgilman/go/ftpfs/fs/minio/internal/pathutil"
	"github.com/jmgilman/go/ftpfs/fs/minio/internal/types"
)

// MinioFS implements core.FS for MinIO/S3-compatible storage.
//
//nolint:revive // MinioFS name is intentional to match naming pattern across fs implementations
type MinioFS struct {
	client *minio.Client
	bucket string
	prefix string // Normalized, without leading or trailing slash
}

// NewMinIO creates a MinIO-backed filesystem.
// Returns CodeInvalidConfig if the configuration is incomplete.
func NewMinIO(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, ftperrors.WrapWithContext(err, ftperrors.CodeInvalidConfig,
				"failed to create minio client", map[string]interface{}{"endpoint": cfg.Endpoint})
		}
	}

	return &MinioFS{
		client: client,
		bucket: cfg.Bucket,
		prefix: pathutil.Normalize(cfg.Prefix),
	}, nil
}

// joinPath maps a filesystem name to its object key.
func (m *MinioFS) joinPath(name string) string {
	return pathutil.JoinPath(m.prefix, name)
}

// Stat returns file information for the named object or key prefix.
// Names below an object do not exist.
func (m *MinioFS) Stat(name string) (fs.FileInfo, error) {
	key := m.joinPath(name)
	base := path.Base("/" + pathutil.Normalize(name))
	ctx := context.Background()

	if key == m.prefix {
		if m.prefix == "" {
			return types.Dir(base, time.Time{}), nil
		}
	} else {
		info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return types.File(base, info.Size, info.LastModified), nil
		}
		if err = errs.Translate(err); !errors.Is(err, fs.ErrNotExist) {
			return nil, errs.PathError("stat", name, err)
		}
	}

	// A prefix is a directory as long as something lives below it.
	first, ok, err := m.first(ctx, pathutil.DirKey(key))
	if err != nil {
		return nil, errs.PathError("stat", name, err)
	}
	if !ok {
		return nil, errs.PathError("stat", name, fs.ErrNotExist)
	}
	return types.Dir(base, first.LastModified), nil
}

// first returns the first object or common prefix listed below dirKey.
func (m *MinioFS) first(ctx context.Context, dirKey string) (minio.ObjectInfo, bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:  dirKey,
		MaxKeys: 1,
	}) {
		if object.Err != nil {
			return minio.ObjectInfo{}, false, errs.Translate(object.Err)
		}
		return object, true, nil
	}
	return minio.ObjectInfo{}, false, nil
}

// ReadDir lists the immediate children of the named directory, sorted by
// name. Sub-prefixes are reported as directories.
func (m *MinioFS) ReadDir(name string) ([]fs.DirEntry, error) {
	key := m.joinPath(name)
	dirKey := pathutil.DirKey(key)
	ctx := context.Background()

	var entries []fs.DirEntry
	seen := false
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    dirKey,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("readdir", name, errs.Translate(object.Err))
		}
		seen = true

		// The directory's own marker object.
		if object.Key == dirKey {
			continue
		}

		relName := strings.TrimPrefix(object.Key, dirKey)
		if strings.HasSuffix(relName, "/") {
			entries = append(entries, types.Entry(types.Dir(strings.TrimSuffix(relName, "/"), object.LastModified)))
			continue
		}
		entries = append(entries, types.Entry(types.File(relName, object.Size, object.LastModified)))
	}

	if !seen && key != "" {
		return nil, errs.PathError("readdir", name, m.missingDirError(ctx, key))
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// missingDirError explains why nothing was listed below key: ENOTDIR if key
// is an object, fs.ErrNotExist otherwise.
func (m *MinioFS) missingDirError(ctx context.Context, key string) error {
	_, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return syscall.ENOTDIR
	}
	if err = errs.Translate(err); !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return fs.ErrNotExist
}

// ReadFile reads the named object and returns its contents.
func (m *MinioFS) ReadFile(name string) ([]byte, error) {
	key := m.joinPath(name)
	ctx := context.Background()

	// Get size first to pre-allocate exact buffer size
	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, errs.PathError("readfile", name, errs.Translate(err))
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("readfile", name, errs.Translate(err))
	}
	defer func() {
		_ = obj.Close()
	}()

	buf := make([]byte, info.Size)
	if _, err := io.ReadFull(obj, buf); err != nil {
		return nil, errs.PathError("readfile", name, errs.Translate(err))
	}
	return buf, nil
}

// Exists reports whether the named object or directory exists.
func (m *MinioFS) Exists(name string) (bool, error) {
	_, err := m.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFile uploads data as the named object, replacing any previous content.
func (m *MinioFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	key := m.joinPath(name)
	if key == m.prefix {
		return errs.PathError("writefile", name, syscall.EISDIR)
	}

	_, err := m.client.PutObject(context.Background(), m.bucket, key,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	return errs.PathError("writefile", name, errs.Translate(err))
}

// Mkdir writes a directory marker. The parent must exist and the directory
// must not.
func (m *MinioFS) Mkdir(name string, _ fs.FileMode) error {
	if ok, err := m.Exists(name); err != nil {
		return err
	} else if ok {
		return errs.PathError("mkdir", name, fs.ErrExist)
	}

	parent := path.Dir("/" + pathutil.Normalize(name))
	info, err := m.Stat(parent)
	if err != nil {
		return errs.PathError("mkdir", name, underlying(err))
	}
	if !info.IsDir() {
		return errs.PathError("mkdir", name, syscall.ENOTDIR)
	}

	return m.putMarker(name)
}

// MkdirAll writes a directory marker for path. Intermediate directories are
// implied by the key. It fails if path or any ancestor is an object.
func (m *MinioFS) MkdirAll(name string, _ fs.FileMode) error {
	rel := pathutil.Normalize(name)
	if rel == "" {
		return nil
	}

	ctx := context.Background()
	for _, p := range append(pathutil.Ancestors(rel), rel) {
		_, err := m.client.StatObject(ctx, m.bucket, m.joinPath(p), minio.StatObjectOptions{})
		if err == nil {
			return errs.PathError("mkdir", name, syscall.ENOTDIR)
		}
		if err = errs.Translate(err); !errors.Is(err, fs.ErrNotExist) {
			return errs.PathError("mkdir", name, err)
		}
	}

	return m.putMarker(name)
}

func (m *MinioFS) putMarker(name string) error {
	key := pathutil.DirKey(m.joinPath(name))
	_, err := m.client.PutObject(context.Background(), m.bucket, key,
		bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	return errs.PathError("mkdir", name, errs.Translate(err))
}

// Chroot returns a filesystem whose keys live below dir. The directory must
// exist. Names on the returned filesystem cannot climb above dir.
func (m *MinioFS) Chroot(dir string) (core.FS, error) {
	info, err := m.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errs.PathError("chroot", dir, syscall.ENOTDIR)
	}

	return &MinioFS{
		client: m.client,
		bucket: m.bucket,
		prefix: m.joinPath(dir),
	}, nil
}

// Type returns FSTypeRemote.
func (m *MinioFS) Type() core.FSType {
	return core.FSTypeRemote
}

// underlying unwraps a *fs.PathError so it can be re-wrapped for a new op.
func underlying(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// Compile-time interface check.
var _ core.FS = (*MinioFS)(nil)
