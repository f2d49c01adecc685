package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCdCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cd PATH...",
		Short: "Apply change-directory commands in order",
		Long: `Apply each PATH with a change-directory command, starting at "/".
A failed change leaves the current directory where it was.

Examples:
  ftpview cd --home /srv/ftp/alice dir1 .. ../../dir1
  ftpview cd --home /srv/ftp/alice --case-insensitive /DIR1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.openView(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, arg := range args {
				ok, err := v.ChangeDirectory(arg)
				if err != nil {
					return err
				}
				status := "ok"
				if !ok {
					status = "failed"
				}
				fmt.Fprintf(out, "%s -> %s  cwd=%s\n", arg, status, v.CurrentDirectory().FullName())
			}
			return nil
		},
	}
}
