// Package view implements a per-session virtual file-system view jailed to a
// home directory.
//
// A View maps a user-visible, slash-separated path space onto a native
// directory subtree. Paths are resolved against a current-directory cursor;
// the tokens ".", ".." and "~" are consumed during resolution and ".." at the
// root is clamped rather than rejected, so no sequence of navigation commands
// can climb above the home directory.
//
// # Usage
//
//	v, err := view.New(view.Home{Dir: "/srv/ftp/alice"})
//	if err != nil {
//	    return err // errors.CodeInvalidConfig
//	}
//
//	ok, err := v.ChangeDirectory("docs/../pub")
//	switch {
//	case err != nil:
//	    // the native filesystem could not answer
//	case !ok:
//	    // target missing or not a directory; cursor unchanged
//	}
//	fmt.Println(v.CurrentDirectory().FullName()) // "/pub"
//
// # Case-Insensitive Mode
//
// When the identity asks for case-insensitive matching, each segment is
// matched against the native directory listing ignoring case. Reported names
// keep the casing the caller typed, while native I/O uses the real entry
// name. If several entries differ only by case, an exact-case entry wins and
// otherwise the lexicographically smallest native name is used.
//
// # Thread Safety
//
// A View belongs to one session and is not safe for concurrent use. Handles
// share only immutable state and may be used from any goroutine.
package view
