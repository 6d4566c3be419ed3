package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/mkbranch/internal/config"
	"github.com/andyrewlee/mkbranch/internal/logging"
)

// usageError marks errors that come from bad flags or arguments.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type rootOptions struct {
	dryRun     bool
	noCheckout bool
	copy       bool
	sanitize   bool
	plain      bool
	verbose    bool
	configPath string
	dir        string

	// home overrides ~/.mkbranch, used by tests.
	home string
}

// Run is the CLI entry point. Returns an exit code.
func Run(ctx context.Context, args []string, version, commit, date string) int {
	return execute(ctx, NewRootCmd(version, commit, date), args)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	defer func() { _ = logging.Close() }()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	logging.Error("%s failed: %v", cmd.Name(), err)
	Errorf(cmd.ErrOrStderr(), "%v", err)

	var uErr *usageError
	if errors.As(err, &uErr) {
		return ExitUsage
	}
	return ExitError
}

// NewRootCmd builds the mkbranch command tree.
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mkbranch",
		Short: "Create a git branch from a few prompted answers",
		Long: `mkbranch asks for a branch prefix, a username, a detail, a separator and
whether to add today's date, then creates and checks out a branch named

  <prefix>/<username>/<commit>/<detail>[_YYYYMMDD]

where <commit> is the short hash of the current branch's latest commit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd, opts)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the branch name without creating it")
	flags.BoolVar(&opts.noCheckout, "no-checkout", false, "Create the branch without switching to it")
	flags.BoolVar(&opts.copy, "copy", false, "Copy the branch name to the clipboard")
	flags.BoolVar(&opts.sanitize, "sanitize", false, "Replace the separator inside typed answers with '-'")
	flags.BoolVar(&opts.plain, "plain", false, "Use numbered line prompts instead of the interactive picker")

	pflags := cmd.PersistentFlags()
	pflags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pflags.StringVar(&opts.configPath, "config", "", "Read only this config file")
	pflags.StringVarP(&opts.dir, "dir", "C", "", "Run in this repository directory")

	cmd.AddCommand(
		newConfigCmd(opts),
		newVersionCmd(version, commit, date),
	)
	return cmd
}

func (o *rootOptions) paths() (*config.Paths, error) {
	if o.home != "" {
		return config.PathsFor(o.home), nil
	}
	return config.DefaultPaths()
}

func (o *rootOptions) workDir() (string, error) {
	if o.dir != "" {
		return o.dir, nil
	}
	return os.Getwd()
}

func setupLogging(cmd *cobra.Command, opts *rootOptions) {
	paths, err := opts.paths()
	if err != nil {
		Warnf(cmd.ErrOrStderr(), "could not initialize logging: %v", err)
		return
	}
	level := logging.LevelInfo
	if opts.verbose {
		level = logging.LevelDebug
	}
	if err := logging.Initialize(paths.LogDir, level); err != nil {
		Warnf(cmd.ErrOrStderr(), "could not initialize logging: %v", err)
		return
	}
	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Debug log: %s\n", logging.GetLogPath())
	}
	logging.Debug("Starting %s", cmd.CommandPath())
}

func loadConfig(opts *rootOptions, projectDir string) (*config.Config, error) {
	paths, err := opts.paths()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.LoadOptions{
		ExplicitPath: opts.configPath,
		GlobalPath:   paths.ConfigPath,
		ProjectDir:   projectDir,
	})
	if err != nil {
		return nil, err
	}
	if !opts.verbose {
		if level, err := logging.ParseLevel(cfg.LogLevel); err == nil {
			logging.SetLevel(level)
		} else {
			logging.Warn("Ignoring log_level: %v", err)
		}
	}
	for _, src := range cfg.Sources {
		logging.Debug("Loaded config %s", src)
	}
	return cfg, nil
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mkbranch %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
