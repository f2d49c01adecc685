// Package billy provides go-billy backed implementations of core.FS.
//
// NewLocal wraps go-billy's osfs in bound mode: every path, including the
// targets of symbolic links, is resolved inside the provider root, so a
// provider created for a home directory can never observe anything outside
// it. NewMemory wraps memfs and is intended for tests.
//
// Usage:
//
//	// Provider confined to a user's home directory
//	fsys := billy.NewLocal("/srv/ftp/alice")
//
//	// In-memory provider for tests
//	mem := billy.NewMemory()
//	err := mem.MkdirAll("/srv/ftp/alice/dir1", 0o755)
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines.
package billy
