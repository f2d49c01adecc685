package view

import (
	"io/fs"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/ftpfs/fs/billy"
	"github.com/jmgilman/go/ftpfs/fs/core"
)

// backend builds a populated home directory on a native filesystem:
//
//	home/
//	  dir1/
//	    file2
//	  file1
type backend struct {
	name string
	// setup returns the filesystem holding home, the home path and the
	// options that make New use that filesystem.
	setup func(t *testing.T) (core.FS, string, []Option)
}

func backends() []backend {
	return []backend{
		{
			name: "local",
			setup: func(t *testing.T) (core.FS, string, []Option) {
				return billy.NewLocal("/"), t.TempDir(), nil
			},
		},
		{
			name: "memory",
			setup: func(t *testing.T) (core.FS, string, []Option) {
				fsys := billy.NewMemory()
				require.NoError(t, fsys.MkdirAll("/test-tmp/ftproot", 0o755))
				return fsys, "/test-tmp/ftproot", []Option{WithFS(fsys)}
			},
		},
	}
}

func populate(t *testing.T, fsys core.FS, home string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(path.Join(home, "dir1"), 0o755))
	require.NoError(t, fsys.WriteFile(path.Join(home, "file1"), []byte("file1"), 0o644))
	require.NoError(t, fsys.WriteFile(path.Join(home, "dir1", "file2"), []byte("file2"), 0o644))
}

// forEachBackend creates a populated view on every backend and runs fn.
func forEachBackend(t *testing.T, ignoreCase bool, fn func(t *testing.T, v *View, fsys core.FS, home string)) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			fsys, home, opts := b.setup(t)
			populate(t, fsys, home)

			v, err := New(Home{Dir: home, IgnoreCase: ignoreCase}, opts...)
			require.NoError(t, err)
			fn(t, v, fsys, home)
		})
	}
}

// faultyFS fails Stat and ReadDir for one name with a fixed error.
type faultyFS struct {
	core.FS
	fail string
	err  error
}

func (f *faultyFS) Stat(name string) (fs.FileInfo, error) {
	if name == f.fail {
		return nil, f.err
	}
	return f.FS.Stat(name)
}

func (f *faultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == f.fail {
		return nil, f.err
	}
	return f.FS.ReadDir(name)
}

func (f *faultyFS) Chroot(dir string) (core.FS, error) {
	inner, err := f.FS.Chroot(dir)
	if err != nil {
		return nil, err
	}
	return &faultyFS{FS: inner, fail: f.fail, err: f.err}, nil
}
