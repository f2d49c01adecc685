// Package types provides fs.FileInfo and fs.DirEntry values for object keys.
package types // nolint:revive // Internal package with clear purpose

import (
	"io/fs"
	"time"
)

// FileInfo implements fs.FileInfo for objects and key prefixes.
type FileInfo struct {
	name    string
	size    int64
	modTime time.Time
	mode    fs.FileMode
}

// File describes an object.
func File(name string, size int64, modTime time.Time) *FileInfo {
	return &FileInfo{name: name, size: size, modTime: modTime, mode: 0o644}
}

// Dir describes a key prefix. Prefixes have no modification time of their
// own; marker objects supply one when present.
func Dir(name string, modTime time.Time) *FileInfo {
	return &FileInfo{name: name, modTime: modTime, mode: fs.ModeDir | 0o755}
}

func (fi *FileInfo) Name() string       { return fi.name }
func (fi *FileInfo) Size() int64        { return fi.size }
func (fi *FileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *FileInfo) ModTime() time.Time { return fi.modTime }
func (fi *FileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *FileInfo) Sys() interface{}   { return nil }

// DirEntry adapts a FileInfo to fs.DirEntry.
type DirEntry struct {
	info *FileInfo
}

// Entry wraps info as a directory entry.
func Entry(info *FileInfo) DirEntry {
	return DirEntry{info: info}
}

func (e DirEntry) Name() string               { return e.info.name }
func (e DirEntry) IsDir() bool                { return e.info.IsDir() }
func (e DirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e DirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// Compile-time interface checks.
var (
	_ fs.FileInfo = (*FileInfo)(nil)
	_ fs.DirEntry = DirEntry{}
)
