package view

import (
	"log/slog"
	"path/filepath"
	"reflect"

	"github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/billy"
)

// View is a session's jailed view of its home directory.
type View struct {
	jail            *jail
	caseInsensitive bool
	cwd             VirtualPath
	logger          *slog.Logger
}

// New creates a View for identity, starting at the root.
//
// Returns CodeInvalidConfig if identity is nil, or if its home directory is
// empty, missing, or not a directory.
func New(identity Identity, opts ...Option) (*View, error) {
	if isNil(identity) {
		return nil, errors.New(errors.CodeInvalidConfig, "identity is required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	home := identity.HomeDirectory()
	if home == "" {
		return nil, errors.New(errors.CodeInvalidConfig, "home directory is not set")
	}

	fsys := o.fsys
	if fsys == nil {
		abs, err := filepath.Abs(home)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
				"cannot make home directory absolute", map[string]interface{}{"home": home})
		}
		home = abs
		fsys = billy.NewLocal("/")
	}
	home = filepath.Clean(home)

	info, err := fsys.Stat(home)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"home directory is not accessible", map[string]interface{}{"home": home})
	}
	if !info.IsDir() {
		return nil, errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "home directory is not a directory"),
			"home", home,
		)
	}

	jailed, err := fsys.Chroot(home)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
			"cannot scope filesystem to home directory", map[string]interface{}{"home": home})
	}

	caseInsensitive := identity.CaseInsensitive()
	if o.caseInsensitive != nil {
		caseInsensitive = *o.caseInsensitive
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("home", home)
	logger.Debug("view created", "case_insensitive", caseInsensitive, "fs", jailed.Type().String())

	return &View{
		jail: &jail{
			root:    home,
			fsys:    jailed,
			matcher: entryMatcher{fsys: jailed, caseInsensitive: caseInsensitive},
		},
		caseInsensitive: caseInsensitive,
		cwd:             RootPath(),
		logger:          logger,
	}, nil
}

// isNil reports whether identity is nil or a nil pointer wrapped in the
// interface.
func isNil(identity Identity) bool {
	if identity == nil {
		return true
	}
	v := reflect.ValueOf(identity)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Root returns the native path of the home directory.
func (v *View) Root() string {
	return v.jail.root
}

// CaseInsensitive reports whether segments are matched ignoring case.
func (v *View) CaseInsensitive() bool {
	return v.caseInsensitive
}

// HomeDirectory returns a handle for the root, rendered as "/".
func (v *View) HomeDirectory() *Handle {
	return &Handle{jail: v.jail, path: RootPath()}
}

// CurrentDirectory returns a handle for the current directory.
func (v *View) CurrentDirectory() *Handle {
	return &Handle{jail: v.jail, path: v.cwd}
}

// File returns a handle for raw resolved against the current directory.
// The target does not need to exist, which makes File suitable for
// create-style operations. The handle never resolves outside the root.
func (v *View) File(raw string) *Handle {
	return &Handle{jail: v.jail, path: Resolve(raw, v.cwd)}
}

// ChangeDirectory moves the cursor to raw.
//
// It returns (true, nil) once every segment of the target has been verified
// to be an existing directory. It returns (false, nil) if a segment is
// missing or not a directory, and (false, err) if the native filesystem
// could not answer. The cursor only changes on success.
func (v *View) ChangeDirectory(raw string) (bool, error) {
	target := Resolve(raw, v.cwd)
	logger := v.logger.With("from", v.cwd.String(), "to", target.String())

	// The root and the current directory need no native check, so "~", "/"
	// and "." always succeed.
	if !target.IsRoot() && !target.Equal(v.cwd) {
		res, err := v.jail.walk(target)
		if err != nil {
			logger.Warn("change directory failed", "error", err)
			return false, err
		}
		if !res.found || !res.info.IsDir() {
			logger.Debug("change directory rejected")
			return false, nil
		}
	}

	v.cwd = target
	logger.Debug("change directory")
	return true, nil
}
