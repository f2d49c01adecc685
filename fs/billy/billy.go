package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/ftpfs/fs/core"
)

// FS adapts a billy.Filesystem to core.FS.
type FS struct {
	bfs    billy.Filesystem
	fsType core.FSType
}

// NewLocal creates a local filesystem rooted at root. An empty root means "/".
// The provider runs in go-billy's bound mode, so neither ".." nor symbolic
// links resolve outside root.
func NewLocal(root string) *FS {
	if root == "" {
		root = "/"
	}
	return &FS{
		bfs:    osfs.New(root, osfs.WithBoundOS()),
		fsType: core.FSTypeLocal,
	}
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *FS {
	return &FS{
		bfs:    memfs.New(),
		fsType: core.FSTypeMemory,
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Root returns the root of the underlying filesystem.
func (f *FS) Root() string {
	return f.bfs.Root()
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// isNotExist treats ENOTDIR, ENAMETOOLONG and EINVAL as absence: nothing
// exists below a regular file or under a name the OS cannot represent.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.EINVAL)
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	file, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// ReadDir reads the named directory and returns its entries sorted by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	// Billy's ReadDir returns []fs.FileInfo, we need to convert to []fs.DirEntry
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	file, err := f.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = file.Write(data)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Mkdir creates a new directory. Unlike MkdirAll, it fails if the parent
// does not exist or the directory already exists.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := f.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.ToSlash(filepath.Dir(name))
	if parent != "." && parent != "/" {
		info, err := f.bfs.Stat(parent)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: syscall.ENOTDIR}
		}
	}
	return f.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(path), perm)
}

// Chroot returns a filesystem scoped to dir. The directory must exist.
// Local providers stay in bound mode: symbolic links below dir resolve
// inside dir, whether they are absolute or climb with "..".
func (f *FS) Chroot(dir string) (core.FS, error) {
	dir = normalize(dir)
	info, err := f.bfs.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "chroot", Path: dir, Err: syscall.ENOTDIR}
	}
	if f.fsType == core.FSTypeLocal {
		// osfs drops bound mode on Chroot, so the scoped provider is rebuilt
		// bound to the resolved directory.
		joined, err := securejoin.SecureJoin(f.bfs.Root(), dir)
		if err != nil {
			return nil, &fs.PathError{Op: "chroot", Path: dir, Err: err}
		}
		return &FS{bfs: osfs.New(joined, osfs.WithBoundOS()), fsType: f.fsType}, nil
	}

	chrootFS, err := f.bfs.Chroot(dir)
	if err != nil {
		return nil, err
	}
	return &FS{bfs: chrootFS, fsType: f.fsType}, nil
}

// Type returns the provider type.
func (f *FS) Type() core.FSType {
	return f.fsType
}

// Compile-time interface checks.
var _ core.FS = (*FS)(nil)
