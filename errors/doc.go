// Package errors provides structured error handling for the file-system view
// and its collaborators.
//
// Every error produced by this module is a PlatformError carrying an
// ErrorCode, a retry classification, an optional context map and an optional
// cause. The package stays compatible with the standard library: errors.Is,
// errors.As and errors.Unwrap all work through the cause chain.
//
// # Codes
//
// Codes describe what a protocol layer needs to know to pick a response:
//
//   - CodeInvalidConfig: an identity or home directory is unusable
//   - CodeNotFound: a path does not exist
//   - CodeNotDirectory: a path segment is not a directory
//   - CodeForbidden: the native filesystem denied access, or a path would leave the root
//   - CodeIO / CodeUnavailable: the native filesystem could not answer
//
// # Native errors
//
// FromNative converts errors returned by io/fs style backends into
// PlatformErrors so that "does not exist" and "cannot be determined" stay
// distinguishable:
//
//	info, err := fsys.Stat(name)
//	if err != nil {
//	    return errors.FromNative(err, "stat", name)
//	}
//
// # JSON
//
// ToJSON flattens any error into an ErrorResponse without exposing the cause
// chain.
package errors
