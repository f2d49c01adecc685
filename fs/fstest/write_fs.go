package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/ftpfs/fs/core"
)

// TestWriteFS tests directory and file creation.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	TestWriteFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("Mkdir", func(t *testing.T) {
		if err := filesystem.Mkdir("made", 0o755); err != nil {
			t.Fatalf("Mkdir(made): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("made")
		if err != nil {
			t.Fatalf("Stat(made): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(made): IsDir() = false, want true")
		}
	})

	t.Run("MkdirExisting", func(t *testing.T) {
		if err := filesystem.Mkdir("twice", 0o755); err != nil {
			t.Fatalf("Mkdir(twice): setup failed: %v", err)
		}
		err := filesystem.Mkdir("twice", 0o755)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(twice) again: got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		if config.VirtualDirectories {
			t.Skip("filesystem has virtual directories")
		}
		if err := filesystem.Mkdir("no/parent", 0o755); err == nil {
			t.Errorf("Mkdir(no/parent): got nil, want error")
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("x/y/z", 0o755); err != nil {
			t.Fatalf("MkdirAll(x/y/z): got error %v, want nil", err)
		}
		if err := filesystem.MkdirAll("x/y/z", 0o755); err != nil {
			t.Errorf("MkdirAll(x/y/z) again: got error %v, want nil", err)
		}
		if ok, err := filesystem.Exists("x/y/z"); err != nil || !ok {
			t.Errorf("Exists(x/y/z): got (%v, %v), want (true, nil)", ok, err)
		}
	})

	t.Run("WriteFileTruncates", func(t *testing.T) {
		if err := filesystem.WriteFile("file.txt", []byte("long content"), 0o644); err != nil {
			t.Fatalf("WriteFile(file.txt): got error %v, want nil", err)
		}
		if err := filesystem.WriteFile("file.txt", []byte("short"), 0o644); err != nil {
			t.Fatalf("WriteFile(file.txt) again: got error %v, want nil", err)
		}
		info, err := filesystem.Stat("file.txt")
		if err != nil {
			t.Fatalf("Stat(file.txt): got error %v, want nil", err)
		}
		if info.Size() != int64(len("short")) {
			t.Errorf("Stat(file.txt): Size() = %d, want %d", info.Size(), len("short"))
		}
	})
}
