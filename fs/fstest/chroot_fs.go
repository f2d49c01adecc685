package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/ftpfs/fs/core"
)

// TestChrootFS tests scoped filesystem views and boundary enforcement.
func TestChrootFS(t *testing.T, filesystem core.FS) {
	TestChrootFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestChrootFSWithConfig tests scoped filesystem views with behavior configuration.
func TestChrootFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	// root/
	//   sandbox/
	//     allowed.txt
	//     inner/
	//   sensitive.txt
	if err := filesystem.MkdirAll("sandbox/inner", 0o755); err != nil {
		t.Fatalf("MkdirAll(sandbox/inner): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("sandbox/allowed.txt", []byte("allowed"), 0o644); err != nil {
		t.Fatalf("WriteFile(sandbox/allowed.txt): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("sensitive.txt", []byte("secret data"), 0o644); err != nil {
		t.Fatalf("WriteFile(sensitive.txt): setup failed: %v", err)
	}

	chrootFS, err := filesystem.Chroot("sandbox")
	if err != nil {
		t.Fatalf("Chroot(sandbox): got error %v, want nil", err)
	}

	t.Run("Inside", func(t *testing.T) {
		if ok, err := chrootFS.Exists("allowed.txt"); err != nil || !ok {
			t.Errorf("chrootFS.Exists(allowed.txt): got (%v, %v), want (true, nil)", ok, err)
		}
		info, err := chrootFS.Stat("inner")
		if err != nil {
			t.Fatalf("chrootFS.Stat(inner): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("chrootFS.Stat(inner): IsDir() = false, want true")
		}
	})

	t.Run("Outside", func(t *testing.T) {
		_, err := chrootFS.Stat("sensitive.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("chrootFS.Stat(sensitive.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("PathTraversalPrevention", func(t *testing.T) {
		for _, name := range []string{
			"../sensitive.txt",
			"../../../sensitive.txt",
			"inner/../../sensitive.txt",
		} {
			if _, err := chrootFS.Stat(name); err == nil {
				t.Errorf("chrootFS.Stat(%s): should fail, but succeeded (path traversal vulnerability)", name)
			}
		}
	})

	t.Run("WriteStaysInside", func(t *testing.T) {
		if err := chrootFS.WriteFile("new.txt", []byte("new"), 0o644); err != nil {
			t.Fatalf("chrootFS.WriteFile(new.txt): got error %v, want nil", err)
		}
		if ok, err := filesystem.Exists("sandbox/new.txt"); err != nil || !ok {
			t.Errorf("filesystem.Exists(sandbox/new.txt): got (%v, %v), want (true, nil)", ok, err)
		}
		if ok, _ := filesystem.Exists("new.txt"); ok {
			t.Errorf("filesystem.Exists(new.txt): file created outside chroot")
		}
	})

	t.Run("Nested", func(t *testing.T) {
		nested, err := chrootFS.Chroot("inner")
		if err != nil {
			t.Fatalf("chrootFS.Chroot(inner): got error %v, want nil", err)
		}
		if _, err := nested.Stat("../allowed.txt"); err == nil {
			t.Errorf("nested.Stat(../allowed.txt): should fail (path traversal from nested chroot)")
		}
		if nested.Type() != filesystem.Type() {
			t.Errorf("nested.Type(): got %v, want %v", nested.Type(), filesystem.Type())
		}
	})

	t.Run("SymlinkEscape", func(t *testing.T) {
		if config.Symlink == nil {
			t.Skip("provider cannot create symbolic links")
		}
		links := map[string]string{
			"sandbox/abs-link":  "/sensitive.txt",
			"sandbox/rel-link":  "../sensitive.txt",
			"sandbox/up-link":   "..",
			"sandbox/root-link": "/",
		}
		for link, target := range links {
			if err := config.Symlink(filesystem, target, link); err != nil {
				t.Fatalf("Symlink(%s -> %s): setup failed: %v", link, target, err)
			}
		}

		for _, name := range []string{
			"abs-link",
			"rel-link",
			"up-link/sensitive.txt",
			"root-link/sensitive.txt",
			"inner/../up-link/sensitive.txt",
		} {
			if ok, err := chrootFS.Exists(name); err != nil || ok {
				t.Errorf("chrootFS.Exists(%s): got (%v, %v), want (false, nil)", name, ok, err)
			}
			if data, err := chrootFS.ReadFile(name); err == nil && string(data) == "secret data" {
				t.Errorf("chrootFS.ReadFile(%s): read outside chroot (symlink escape)", name)
			}
		}
	})

	t.Run("ChrootMissing", func(t *testing.T) {
		if _, err := filesystem.Chroot("does-not-exist"); err == nil {
			t.Errorf("Chroot(does-not-exist): got nil, want error")
		}
	})
}
