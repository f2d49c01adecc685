// Package fstest provides a conformance test suite for core.FS providers.
//
// The suite checks the contract the virtual file-system view relies on:
// existence queries that separate "missing" from "unknown", sorted directory
// listings, and Chroot views that cannot be escaped.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/ftpfs/fs/core"
)

// FSTestConfig configures the test suite to match filesystem behavior characteristics.
type FSTestConfig struct {
	// VirtualDirectories indicates directories are virtual (e.g., object
	// store prefixes) and cannot be stat'd directly.
	VirtualDirectories bool

	// SkipTests lists test names to skip, e.g. "ChrootFS/Nested".
	SkipTests []string

	// Symlink creates a symbolic link at link storing target. A target
	// starting with "/" names a path from the filesystem root and is stored
	// as that entry's absolute native path. Nil skips the symlink checks.
	Symlink func(filesystem core.FS, target, link string) error
}

// POSIXTestConfig returns configuration for POSIX-like filesystems (local, memory).
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{}
}

// TestSuite runs all conformance tests against a filesystem.
// newFS must return a fresh, empty filesystem on every call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	run := func(name string, fn func(t *testing.T, filesystem core.FS, config FSTestConfig)) {
		t.Run(name, func(t *testing.T) {
			if slices.Contains(config.SkipTests, name) {
				t.Skip("Skipped by provider configuration")
			}
			fn(t, newFS(), config)
		})
	}

	run("ReadFS", TestReadFSWithConfig)
	run("WriteFS", TestWriteFSWithConfig)
	run("ChrootFS", TestChrootFSWithConfig)
}
