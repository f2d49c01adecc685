// Package pathutil maps filesystem names to MinIO/S3 object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize turns name into a clean, relative key fragment. Backslashes are
// treated as separators and ".." cannot climb above the root. Returns "" for
// the root.
func Normalize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}

// JoinPath joins a normalized prefix with name to create a full object key.
// Returns prefix itself when name is the root.
func JoinPath(prefix, name string) string {
	name = Normalize(name)
	switch {
	case name == "":
		return prefix
	case prefix == "":
		return name
	default:
		return prefix + "/" + name
	}
}

// DirKey returns the listing prefix for the directory at key: key plus a
// trailing "/", or "" for the bucket root.
func DirKey(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// Ancestors returns every proper ancestor of a relative key fragment,
// shortest first: "a/b/c" yields ["a", "a/b"].
func Ancestors(name string) []string {
	var out []string
	for i, r := range name {
		if r == '/' {
			out = append(out, name[:i])
		}
	}
	return out
}
