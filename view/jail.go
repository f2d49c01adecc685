package view

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/core"
)

// jail holds the immutable state shared by a View and every Handle it
// produces: the root boundary and a filesystem scoped to it.
type jail struct {
	root    string
	fsys    core.FS
	matcher entryMatcher
}

// resolution describes how far a virtual path could be matched against
// native entries.
type resolution struct {
	// native holds the native name of every matched segment followed by
	// the requested names of the unmatched tail.
	native []string

	// found reports whether every segment matched.
	found bool

	// info describes the final entry when found is true.
	info fs.FileInfo
}

// walk matches p one segment at a time from the root. Every segment except
// the last must be a directory; the walk stops at the first segment that is
// missing or sits below a non-directory.
func (j *jail) walk(p VirtualPath) (resolution, error) {
	segments := p.segments
	res := resolution{native: make([]string, 0, len(segments))}

	if len(segments) == 0 {
		info, err := j.fsys.Stat(".")
		if err != nil {
			if notExist(err) {
				return res, nil
			}
			return res, errors.FromNative(err, "stat", "/")
		}
		res.found, res.info = true, info
		return res, nil
	}

	parent := ""
	for i, segment := range segments {
		m, ok, err := j.matcher.lookup(parent, segment)
		if err != nil {
			return res, errors.WithContext(err, "segment", segment)
		}
		if !ok {
			res.native = append(res.native, segments[i:]...)
			return res, nil
		}
		res.native = append(res.native, m.native)
		if i < len(segments)-1 && !m.info.IsDir() {
			res.native = append(res.native, segments[i+1:]...)
			return res, nil
		}
		parent = path.Join(parent, m.native)
		res.info = m.info
	}
	res.found = true
	return res, nil
}

// nativePath joins the root with native segments and verifies the result
// stays inside the root.
func (j *jail) nativePath(native []string) (string, error) {
	full := filepath.Join(append([]string{j.root}, native...)...)
	rel, err := filepath.Rel(j.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.WithContextMap(
			errors.New(errors.CodeForbidden, "path resolves outside the home directory"),
			map[string]interface{}{"root": j.root, "path": full},
		)
	}
	return full, nil
}
