package view

import (
	"log/slog"

	"github.com/jmgilman/go/ftpfs/fs/core"
)

// Option configures View creation.
type Option func(*options)

type options struct {
	fsys            core.FS
	logger          *slog.Logger
	caseInsensitive *bool
}

// WithFS sets the native filesystem the home directory is looked up in.
// The home directory is interpreted relative to this filesystem's root.
// Defaults to the local disk.
func WithFS(fsys core.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithLogger sets the logger used for navigation events.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCaseInsensitive overrides the identity's case-sensitivity preference.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *options) {
		o.caseInsensitive = &enabled
	}
}
