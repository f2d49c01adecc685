package view

import (
	"path"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/billy"
	"github.com/jmgilman/go/ftpfs/fs/core"
)

func TestHandle_Names(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, v *View, _ core.FS, home string) {
		h := v.File("dir1/file2")
		assert.Equal(t, "/dir1/file2", h.FullName())
		assert.Equal(t, "/dir1/file2", h.String())
		assert.Equal(t, "file2", h.Name())
		assert.Equal(t, []string{"dir1", "file2"}, h.Path().Segments())

		native, err := h.NativePath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "dir1", "file2"), native)

		assert.Equal(t, "/", v.HomeDirectory().Name())
	})
}

func TestHandle_Queries(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, v *View, _ core.FS, _ string) {
		tests := []struct {
			path   string
			exists bool
			isDir  bool
			isFile bool
		}{
			{path: "/", exists: true, isDir: true},
			{path: "/dir1", exists: true, isDir: true},
			{path: "/file1", exists: true, isFile: true},
			{path: "/dir1/file2", exists: true, isFile: true},
			{path: "/missing", exists: false},
			{path: "/file1/below", exists: false},
		}

		for _, tt := range tests {
			h := v.File(tt.path)

			exists, err := h.DoesExist()
			require.NoError(t, err, tt.path)
			assert.Equal(t, tt.exists, exists, tt.path)

			isDir, err := h.IsDirectory()
			require.NoError(t, err, tt.path)
			assert.Equal(t, tt.isDir, isDir, tt.path)

			isFile, err := h.IsFile()
			require.NoError(t, err, tt.path)
			assert.Equal(t, tt.isFile, isFile, tt.path)
		}
	})
}

func TestHandle_SizeAndModTime(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, v *View, _ core.FS, _ string) {
		size, err := v.File("file1").Size()
		require.NoError(t, err)
		assert.Equal(t, int64(len("file1")), size)

		mod, err := v.File("file1").LastModified()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), mod, time.Hour)

		_, err = v.File("missing").Size()
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

		_, err = v.File("missing").LastModified()
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestHandle_DoesExistIsLive(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, v *View, fsys core.FS, home string) {
		h := v.File("later")
		exists, err := h.DoesExist()
		require.NoError(t, err)
		require.False(t, exists)

		require.NoError(t, fsys.MkdirAll(path.Join(home, "later"), 0o755))

		exists, err = h.DoesExist()
		require.NoError(t, err)
		assert.True(t, exists)

		ok, err := v.ChangeDirectory("later")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestHandle_CreateTargetKeepsRequestedCasing(t *testing.T) {
	fsys := billy.NewMemory()
	populate(t, fsys, "/root")
	v, err := New(Home{Dir: "/root", IgnoreCase: true}, WithFS(fsys))
	require.NoError(t, err)

	h := v.File("DIR1/NewFolder/Child")
	assert.Equal(t, "/DIR1/NewFolder/Child", h.FullName())

	native, err := h.NativePath()
	require.NoError(t, err)
	assert.Equal(t, "/root/dir1/NewFolder/Child", filepath.ToSlash(native))

	exists, err := h.DoesExist()
	require.NoError(t, err)
	assert.False(t, exists)

	// Once a matching entry appears, the handle picks it up.
	require.NoError(t, fsys.MkdirAll("/root/dir1/newfolder/child", 0o755))
	exists, err = h.DoesExist()
	require.NoError(t, err)
	assert.True(t, exists)

	native, err = h.NativePath()
	require.NoError(t, err)
	assert.Equal(t, "/root/dir1/newfolder/child", filepath.ToSlash(native))
	assert.Equal(t, "/DIR1/NewFolder/Child", h.FullName())
}

func TestHandle_SurvivesCursorChanges(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, v *View, _ core.FS, _ string) {
		before := v.CurrentDirectory()

		ok, err := v.ChangeDirectory("dir1")
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "/", before.FullName())
		assert.Equal(t, "/dir1", v.CurrentDirectory().FullName())
	})
}
