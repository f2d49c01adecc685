package view

import (
	"io/fs"
	"path"
	"syscall"

	"golang.org/x/text/cases"

	"github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/core"
)

// match is a native directory entry found for a requested segment.
type match struct {
	// native is the entry's real name. It equals the requested name in
	// case-sensitive mode.
	native string
	info   fs.FileInfo
}

// entryMatcher looks up one segment name among the entries of a native
// directory.
type entryMatcher struct {
	fsys            core.ReadFS
	caseInsensitive bool
}

// lookup finds name inside the native directory parent ("" is the root).
// A missing entry is reported as (match{}, false, nil); errors are reserved
// for cases where the native filesystem could not answer.
func (m entryMatcher) lookup(parent, name string) (match, bool, error) {
	if m.caseInsensitive {
		return m.lookupFold(parent, name)
	}
	return m.stat(parent, name)
}

func (m entryMatcher) stat(parent, name string) (match, bool, error) {
	target := path.Join(parent, name)
	info, err := m.fsys.Stat(target)
	if err != nil {
		if notExist(err) {
			return match{}, false, nil
		}
		return match{}, false, errors.FromNative(err, "stat", "/"+target)
	}
	return match{native: name, info: info}, true, nil
}

func (m entryMatcher) lookupFold(parent, name string) (match, bool, error) {
	dir := parent
	if dir == "" {
		dir = "."
	}
	entries, err := m.fsys.ReadDir(dir)
	if err != nil {
		if notExist(err) {
			return match{}, false, nil
		}
		return match{}, false, errors.FromNative(err, "readdir", "/"+parent)
	}

	fold := cases.Fold()
	want := fold.String(name)

	var best fs.DirEntry
	for _, entry := range entries {
		if entry.Name() == name {
			best = entry
			break
		}
		if fold.String(entry.Name()) != want {
			continue
		}
		if best == nil || entry.Name() < best.Name() {
			best = entry
		}
	}
	if best == nil {
		return match{}, false, nil
	}

	// Listings report symbolic links as links; Stat follows them so a link
	// to a directory is navigable like the directory itself.
	if best.Type()&fs.ModeSymlink == 0 {
		if info, err := best.Info(); err == nil {
			return match{native: best.Name(), info: info}, true, nil
		}
	}
	return m.stat(parent, best.Name())
}

// notExist reports whether err means the target cannot exist. Nothing exists
// below a regular file (ENOTDIR), and no entry can carry a name the OS
// rejects outright (ENAMETOOLONG, EINVAL for embedded NUL bytes).
func notExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.EINVAL)
}
