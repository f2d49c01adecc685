// Package config loads user identities for file-system views.
//
// A configuration lists users, each with a home directory and an optional
// case-insensitive flag. Files may be written in CUE (.cue) or YAML (.yaml,
// .yml). Both formats are unified with an embedded CUE schema, so unknown
// fields, empty names and missing homes are rejected before decoding:
//
//	users: [
//		{name: "alice", home: "/srv/ftp/alice"},
//		{name: "bob", home: "/srv/ftp/bob", caseInsensitive: true},
//	]
//
// Loading reads through a core.ReadFS, so configurations can live on any
// provider:
//
//	cfg, err := config.Load(ctx, billy.NewLocal(""), "/etc/ftpview/users.cue")
//	if err != nil {
//		return err
//	}
//	alice, err := cfg.Lookup("alice")
//	if err != nil {
//		return err
//	}
//	v, err := view.New(alice)
//
// User implements view.Identity.
package config
