package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/ftpfs/fs/core"
)

// TestReadFS tests the read-only queries of a provider.
func TestReadFS(t *testing.T, filesystem core.FS) {
	TestReadFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestReadFSWithConfig tests read-only operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	// testdir/
	//   b.txt
	//   a.txt
	//   sub/
	testContent := []byte("test file content")
	if err := filesystem.MkdirAll("testdir/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir/sub): setup failed: %v", err)
	}
	for _, name := range []string{"testdir/b.txt", "testdir/a.txt"} {
		if err := filesystem.WriteFile(name, testContent, 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
	}

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/a.txt")
		if err != nil {
			t.Fatalf("Stat(testdir/a.txt): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(testdir/a.txt): IsDir() = true, want false")
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("Stat(testdir/a.txt): Size() = %d, want %d", info.Size(), len(testContent))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		if config.VirtualDirectories {
			t.Skip("filesystem has virtual directories")
		}
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(testdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(testdir): IsDir() = false, want true")
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		_, err := filesystem.Stat("testdir/missing")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(testdir/missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/b.txt")
		if err != nil {
			t.Fatalf("ReadFile(testdir/b.txt): got error %v, want nil", err)
		}
		if string(data) != string(testContent) {
			t.Errorf("ReadFile(testdir/b.txt) = %q, want %q", data, testContent)
		}

		if _, err := filesystem.ReadFile("testdir/missing"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(testdir/missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadDirSorted", func(t *testing.T) {
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir(testdir): got error %v, want nil", err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		want := []string{"a.txt", "b.txt", "sub"}
		if len(names) != len(want) {
			t.Fatalf("ReadDir(testdir): got %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("ReadDir(testdir)[%d]: got %q, want %q", i, names[i], want[i])
			}
		}
		if !entries[2].IsDir() {
			t.Errorf("ReadDir(testdir): entry %q IsDir() = false, want true", names[2])
		}
	})

	t.Run("ReadDirNotExist", func(t *testing.T) {
		_, err := filesystem.ReadDir("missing")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadDir(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		tests := []struct {
			name string
			want bool
		}{
			{"testdir", true},
			{"testdir/a.txt", true},
			{"testdir/missing", false},
			{"testdir/a.txt/below-file", false},
		}
		for _, tt := range tests {
			got, err := filesystem.Exists(tt.name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Exists(%q): got %v, want %v", tt.name, got, tt.want)
			}
		}
	})
}
