package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/ftpfs/config"
	"github.com/jmgilman/go/ftpfs/errors"
	"github.com/jmgilman/go/ftpfs/fs/billy"
	"github.com/jmgilman/go/ftpfs/fs/minio"
	"github.com/jmgilman/go/ftpfs/view"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	home            string
	caseInsensitive bool
	configPath      string
	user            string
	verbose         bool
	s3              minio.Config
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "ftpview",
		Short: "Navigate a home directory the way an FTP session sees it",
		Long: `ftpview opens a jailed view of a home directory and applies
navigation commands to it. Paths are virtual: "/" is the home directory
and nothing outside it can be reached.

The identity comes either from --home or from a user in a configuration
file selected with --config and --user.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.home, "home", "", "home directory of the session")
	flags.BoolVar(&opts.caseInsensitive, "case-insensitive", false, "match path segments ignoring letter case")
	flags.StringVarP(&opts.configPath, "config", "c", "", "user configuration file (.cue, .yaml or .yml)")
	flags.StringVarP(&opts.user, "user", "u", "", "configured user to open the view for")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log navigation to stderr")
	flags.StringVar(&opts.s3.Endpoint, "s3-endpoint", "", "serve homes from a MinIO/S3 endpoint instead of the local disk")
	flags.StringVar(&opts.s3.Bucket, "s3-bucket", "", "bucket holding the home directories")
	flags.StringVar(&opts.s3.Prefix, "s3-prefix", "", "key prefix treated as the filesystem root")
	flags.StringVar(&opts.s3.AccessKey, "s3-access-key", "", "S3 access key ID")
	flags.StringVar(&opts.s3.SecretKey, "s3-secret-key", "", "S3 secret access key")
	flags.BoolVar(&opts.s3.UseSSL, "s3-ssl", true, "use HTTPS for the S3 endpoint")

	cmd.AddCommand(
		newCdCmd(opts),
		newResolveCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

// loadConfig reads the configuration named by --config from the local disk.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if o.configPath == "" {
		return nil, errors.New(errors.CodeInvalidInput, "--config is required")
	}
	path, err := filepath.Abs(o.configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid configuration path")
	}
	return config.Load(cmd.Context(), billy.NewLocal(""), path)
}

// identity picks the session identity from the flags.
func (o *globalOptions) identity(cmd *cobra.Command) (view.Identity, error) {
	switch {
	case o.configPath != "" && o.home != "":
		return nil, errors.New(errors.CodeInvalidInput, "--home and --config are mutually exclusive")
	case o.configPath != "":
		if o.user == "" {
			return nil, errors.New(errors.CodeInvalidInput, "--user is required with --config")
		}
		cfg, err := o.loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		return cfg.Lookup(o.user)
	case o.home != "":
		return view.Home{Dir: o.home}, nil
	default:
		return nil, errors.New(errors.CodeInvalidInput, "one of --home or --config is required")
	}
}

// openView builds the view for the selected identity. An explicit
// --case-insensitive flag overrides the configured mode.
func (o *globalOptions) openView(cmd *cobra.Command) (*view.View, error) {
	identity, err := o.identity(cmd)
	if err != nil {
		return nil, err
	}

	var viewOpts []view.Option
	if o.s3.Endpoint != "" {
		fsys, err := minio.NewMinIO(o.s3)
		if err != nil {
			return nil, err
		}
		viewOpts = append(viewOpts, view.WithFS(fsys))
	}
	if cmd.Flags().Changed("case-insensitive") {
		viewOpts = append(viewOpts, view.WithCaseInsensitive(o.caseInsensitive))
	}
	if o.verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		viewOpts = append(viewOpts, view.WithLogger(logger))
	}

	return view.New(identity, viewOpts...)
}
