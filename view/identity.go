package view

// Identity is the narrow view of a user account needed to build a View.
type Identity interface {
	// HomeDirectory returns the native directory the session is jailed to.
	HomeDirectory() string

	// CaseInsensitive reports whether directory entries are matched
	// ignoring case.
	CaseInsensitive() bool
}

// Home is a minimal Identity.
type Home struct {
	Dir        string
	IgnoreCase bool
}

// HomeDirectory returns h.Dir.
func (h Home) HomeDirectory() string { return h.Dir }

// CaseInsensitive returns h.IgnoreCase.
func (h Home) CaseInsensitive() bool { return h.IgnoreCase }
