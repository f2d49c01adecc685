package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/ftpfs/errors"
)

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var cwd string

	cmd := &cobra.Command{
		Use:   "resolve PATH",
		Short: "Show where a path resolves inside the view",
		Long: `Resolve PATH against the current directory and print its virtual
name, the native path it maps to and whether it exists. The target does
not need to exist.

Examples:
  ftpview resolve --home /srv/ftp/alice ../../etc/passwd
  ftpview resolve --home /srv/ftp/alice --cwd /dir1 file2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.openView(cmd)
			if err != nil {
				return err
			}

			ok, err := v.ChangeDirectory(cwd)
			if err != nil {
				return err
			}
			if !ok {
				return errors.WithContext(
					errors.New(errors.CodeNotFound, "working directory does not exist"),
					"cwd", cwd,
				)
			}

			h := v.File(args[0])
			native, err := h.NativePath()
			if err != nil {
				return err
			}
			exists, err := h.DoesExist()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:   %s\n", h.FullName())
			fmt.Fprintf(out, "native: %s\n", native)
			fmt.Fprintf(out, "exists: %t\n", exists)
			return nil
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "/", "virtual directory to resolve from")
	return cmd
}
