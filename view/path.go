package view

import (
	"slices"
	"strings"
)

// VirtualPath is a normalized, root-anchored path inside a view.
// It never contains ".", ".." or "~" segments, and it is never mutated after
// creation.
type VirtualPath struct {
	segments []string
}

// RootPath returns the path of the view root, rendered as "/".
func RootPath() VirtualPath {
	return VirtualPath{}
}

// Resolve normalizes raw against cwd. It performs no I/O and never fails.
//
// Both "/" and "\" separate segments and empty segments are dropped. A
// leading separator anchors raw at the root; otherwise it continues from
// cwd. "." is ignored, ".." drops the last segment (and is a no-op at the
// root), and "~" discards everything resolved so far. Other segments are
// kept verbatim.
func Resolve(raw string, cwd VirtualPath) VirtualPath {
	parts, absolute := split(raw)

	var acc []string
	if !absolute {
		acc = slices.Clone(cwd.segments)
	}
	for _, part := range parts {
		switch part {
		case ".":
		case "..":
			if len(acc) > 0 {
				acc = acc[:len(acc)-1]
			}
		case "~":
			acc = nil
		default:
			acc = append(acc, part)
		}
	}
	return VirtualPath{segments: acc}
}

// split breaks raw into its non-empty segments and reports whether it
// starts with a separator.
func split(raw string) ([]string, bool) {
	isSep := func(r rune) bool { return r == '/' || r == '\\' }
	absolute := raw != "" && isSep(rune(raw[0]))
	return strings.FieldsFunc(raw, isSep), absolute
}

// Segments returns a copy of the path's segments.
func (p VirtualPath) Segments() []string {
	return slices.Clone(p.segments)
}

// Len returns the number of segments.
func (p VirtualPath) Len() int {
	return len(p.segments)
}

// IsRoot reports whether p is the view root.
func (p VirtualPath) IsRoot() bool {
	return len(p.segments) == 0
}

// Name returns the last segment, or "/" for the root.
func (p VirtualPath) Name() string {
	if p.IsRoot() {
		return "/"
	}
	return p.segments[len(p.segments)-1]
}

// Parent returns the containing directory. The parent of the root is the root.
func (p VirtualPath) Parent() VirtualPath {
	if p.IsRoot() {
		return p
	}
	return VirtualPath{segments: slices.Clone(p.segments[:len(p.segments)-1])}
}

// Join resolves raw relative to p. It is shorthand for Resolve(raw, p).
func (p VirtualPath) Join(raw string) VirtualPath {
	return Resolve(raw, p)
}

// Equal reports whether p and other have identical segments.
func (p VirtualPath) Equal(other VirtualPath) bool {
	return slices.Equal(p.segments, other.segments)
}

// String renders p with "/" separators, always starting with "/".
func (p VirtualPath) String() string {
	return "/" + strings.Join(p.segments, "/")
}
