package view

import (
	"io/fs"
	"time"

	"github.com/jmgilman/go/ftpfs/errors"
)

// Handle is an immutable reference to a virtual path inside a view.
// The target does not need to exist. Every query consults the native
// filesystem at call time; nothing is cached.
type Handle struct {
	jail *jail
	path VirtualPath
}

// Path returns the handle's virtual path.
func (h *Handle) Path() VirtualPath {
	return h.path
}

// FullName renders the virtual path with "/" separators, e.g. "/dir1/file2".
func (h *Handle) FullName() string {
	return h.path.String()
}

// Name returns the last path segment, or "/" for the root.
func (h *Handle) Name() string {
	return h.path.Name()
}

// String implements fmt.Stringer.
func (h *Handle) String() string {
	return h.FullName()
}

// NativePath returns the native path the handle currently resolves to.
// In case-insensitive mode existing segments take the native entry's casing;
// segments that do not exist keep the requested casing.
func (h *Handle) NativePath() (string, error) {
	res, err := h.jail.walk(h.path)
	if err != nil {
		return "", err
	}
	return h.jail.nativePath(res.native)
}

// DoesExist reports whether the target exists right now.
// An error means existence could not be determined.
func (h *Handle) DoesExist() (bool, error) {
	res, err := h.jail.walk(h.path)
	if err != nil {
		return false, err
	}
	return res.found, nil
}

// Stat returns the target's metadata, or a CodeNotFound error.
func (h *Handle) Stat() (fs.FileInfo, error) {
	res, err := h.jail.walk(h.path)
	if err != nil {
		return nil, err
	}
	if !res.found {
		return nil, errors.WithContext(
			errors.New(errors.CodeNotFound, "path does not exist"),
			"path", h.FullName(),
		)
	}
	return res.info, nil
}

// IsDirectory reports whether the target exists and is a directory.
func (h *Handle) IsDirectory() (bool, error) {
	info, err := h.statIfExists()
	if err != nil || info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether the target exists and is a regular file.
func (h *Handle) IsFile() (bool, error) {
	info, err := h.statIfExists()
	if err != nil || info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Size returns the target's size in bytes.
func (h *Handle) Size() (int64, error) {
	info, err := h.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// LastModified returns the target's modification time.
func (h *Handle) LastModified() (time.Time, error) {
	info, err := h.Stat()
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (h *Handle) statIfExists() (fs.FileInfo, error) {
	res, err := h.jail.walk(h.path)
	if err != nil || !res.found {
		return nil, err
	}
	return res.info, nil
}
