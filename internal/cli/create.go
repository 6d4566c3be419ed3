package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/mkbranch/internal/git"
	"github.com/andyrewlee/mkbranch/internal/logging"
	"github.com/andyrewlee/mkbranch/internal/prompt"
	"github.com/andyrewlee/mkbranch/internal/ui/common"
	"github.com/andyrewlee/mkbranch/internal/ui/picker"
	"github.com/andyrewlee/mkbranch/internal/wizard"
)

func runCreate(cmd *cobra.Command, opts *rootOptions) error {
	dir, err := opts.workDir()
	if err != nil {
		return err
	}

	// The project config lives at the repository root; outside a repository
	// the directory itself is used and git reports the problem later.
	projectDir := dir
	if root, err := git.GetRepoRoot(dir); err == nil {
		projectDir = root
	}

	cfg, err := loadConfig(opts, projectDir)
	if err != nil {
		return err
	}

	repo := git.NewRepo(dir)
	repo.HashLength = cfg.HashLength
	repo.Checkout = cfg.Checkout && !opts.noCheckout

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), opts.plain)
	w := wizard.New(cfg, p, repo, wizard.Options{
		DryRun:   opts.dryRun,
		Sanitize: opts.sanitize,
	})

	res, err := w.Run(cmd.Context())
	if err != nil {
		return err
	}

	styles := common.DefaultStyles()
	renderSummary(cmd.OutOrStdout(), styles, res, repo.Checkout)

	if opts.copy {
		if err := common.CopyToClipboard(res.Name); err != nil {
			logging.WithError(err, "copy to clipboard")
			Warnf(cmd.ErrOrStderr(), "could not copy to clipboard: %v", err)
		}
	}
	return nil
}

// newPrompter picks the interactive picker only when both ends are terminals.
func newPrompter(in io.Reader, out io.Writer, plain bool) prompt.Prompter {
	if !plain && isTerminal(in) && isTerminal(out) {
		return picker.New(in, out)
	}
	logging.Debug("Using line prompts")
	return prompt.NewLinePrompter(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
