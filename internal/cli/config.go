package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andyrewlee/mkbranch/internal/config"
	"github.com/andyrewlee/mkbranch/internal/git"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect mkbranch configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show merged configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigShow(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show configuration file paths",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigPath(cmd, opts)
			},
		},
	)
	return cmd
}

func projectDir(opts *rootOptions) (string, error) {
	dir, err := opts.workDir()
	if err != nil {
		return "", err
	}
	if root, err := git.GetRepoRoot(dir); err == nil {
		return root, nil
	}
	return dir, nil
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions) error {
	dir, err := projectDir(opts)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts, dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(cfg.Sources) == 0 {
		fmt.Fprintln(out, "# Built-in defaults (no config files found)")
	} else {
		fmt.Fprintln(out, "# Merged configuration")
		for _, src := range cfg.Sources {
			fmt.Fprintf(out, "#   %s\n", src)
		}
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, opts *rootOptions) error {
	paths, err := opts.paths()
	if err != nil {
		return err
	}
	dir, err := projectDir(opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if opts.configPath != "" {
		fmt.Fprintf(out, "explicit: %s\n", opts.configPath)
	}
	fmt.Fprintf(out, "global:   %s\n", paths.ConfigPath)
	fmt.Fprintf(out, "project:  %s\n", config.ProjectConfigPath(dir))
	fmt.Fprintf(out, "logs:     %s\n", paths.LogDir)
	return nil
}
