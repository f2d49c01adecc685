// Package core defines the native filesystem contract consumed by the
// virtual file-system view.
//
// The view never touches the operating system directly. It asks a core.FS
// whether entries exist, what type they are and what a directory contains.
// Providers (see package billy) implement the contract over a real disk or an
// in-memory tree.
//
// # Interface Hierarchy
//
// The FS interface is composed of three sub-interfaces:
//
//   - ReadFS: existence and type queries (Stat, ReadDir, Exists)
//   - WriteFS: fixture and create-style operations (Mkdir, MkdirAll, WriteFile)
//   - ChrootFS: scoped filesystem views (Chroot)
//
// # Error Contract
//
// Exists distinguishes "does not exist" (false, nil) from "cannot be
// determined" (false, err). Stat and ReadDir return errors satisfying
// errors.Is(err, fs.ErrNotExist) for missing entries; any other error means
// the native filesystem could not answer.
package core
