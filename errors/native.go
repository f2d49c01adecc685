package errors

import (
	"io/fs"
	"syscall"
)

// FromNative converts an error returned by a native filesystem call into a
// PlatformError. The operation and path are attached as context.
//
// Mapping:
//   - fs.ErrNotExist                     -> CodeNotFound
//   - syscall.ENOTDIR                    -> CodeNotDirectory
//   - fs.ErrPermission                   -> CodeForbidden
//   - EAGAIN, EBUSY, ETIMEDOUT, ESTALE   -> CodeUnavailable
//   - anything else                      -> CodeIO
//
// Errors that are already PlatformErrors are returned with the extra context.
// Returns nil if err is nil.
func FromNative(err error, op, path string) PlatformError {
	if err == nil {
		return nil
	}

	ctx := map[string]interface{}{"op": op, "path": path}

	var platformErr PlatformError
	if As(err, &platformErr) {
		return WithContextMap(platformErr, ctx)
	}

	var code ErrorCode
	switch {
	case Is(err, fs.ErrNotExist):
		code = CodeNotFound
	case Is(err, syscall.ENOTDIR):
		code = CodeNotDirectory
	case Is(err, fs.ErrPermission):
		code = CodeForbidden
	case Is(err, syscall.EAGAIN), Is(err, syscall.EBUSY),
		Is(err, syscall.ETIMEDOUT), Is(err, syscall.ESTALE):
		code = CodeUnavailable
	default:
		code = CodeIO
	}

	return WrapWithContext(err, code, op+" failed", ctx)
}
