// Package wizard drives the prompt sequence that turns a few answers and the
// current commit into a new branch.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andyrewlee/mkbranch/internal/branch"
	"github.com/andyrewlee/mkbranch/internal/config"
	"github.com/andyrewlee/mkbranch/internal/logging"
	"github.com/andyrewlee/mkbranch/internal/prompt"
)

// ErrCancelled is returned when the user aborts any prompt.
var ErrCancelled = prompt.ErrCancelled

// Repository is the git surface the wizard needs.
type Repository interface {
	HeadCommit(ctx context.Context) (branch, hash string, err error)
	Create(ctx context.Context, name string) error
}

// Options tune a run.
type Options struct {
	DryRun   bool // assemble the name but do not create the branch
	Sanitize bool // replace the separator inside free-text answers
	Now      func() time.Time
}

// Result describes a completed run.
type Result struct {
	Spec         branch.Spec
	Name         string
	SourceBranch string
	// Conflicts names the answers that contain the separator.
	Conflicts []string
	Sanitized bool
	Created   bool
}

// Wizard asks the configured questions and creates the branch.
type Wizard struct {
	cfg      *config.Config
	prompter prompt.Prompter
	repo     Repository
	opts     Options
}

// New returns a Wizard. A nil cfg uses config.DefaultConfig.
func New(cfg *config.Config, p prompt.Prompter, repo Repository, opts Options) *Wizard {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Wizard{cfg: cfg, prompter: p, repo: repo, opts: opts}
}

// Run collects the answers, assembles the name and creates the branch.
// Any git failure aborts the run; a failure reading the commit happens
// before the remaining prompts and before any branch is created.
func (w *Wizard) Run(ctx context.Context) (*Result, error) {
	spec, source, err := w.Collect(ctx)
	if err != nil {
		return nil, err
	}

	conflicts := branch.Conflicts(spec)
	sanitized := false
	if len(conflicts) > 0 {
		if w.opts.Sanitize {
			clean := branch.Sanitize(spec, "-")
			sanitized = clean != spec
			spec = clean
		}
		if sanitized {
			logging.Info("Sanitized separator %q in %v", spec.Separator, conflicts)
		} else {
			logging.Warn("Separator %q appears in %v", spec.Separator, conflicts)
		}
	}

	res := &Result{
		Spec:         spec,
		Name:         branch.Name(spec),
		SourceBranch: source,
		Conflicts:    conflicts,
		Sanitized:    sanitized,
	}
	if w.opts.DryRun {
		logging.Info("Dry run, not creating %s", res.Name)
		return res, nil
	}

	if err := w.repo.Create(ctx, res.Name); err != nil {
		logging.WithError(err, "create branch")
		return res, err
	}
	res.Created = true
	logging.Info("Created branch %s from %s", res.Name, source)
	return res, nil
}

// Collect asks every question and reads the commit hash, in order:
// prefix, username, commit, detail, separator, date.
func (w *Wizard) Collect(ctx context.Context) (spec branch.Spec, source string, err error) {
	q := questions(w.cfg)

	if spec.Prefix, err = w.prompter.Select(ctx, q.prefix); err != nil {
		return spec, "", w.fail("prefix", err)
	}
	if spec.Username, err = w.prompter.Select(ctx, q.username); err != nil {
		return spec, "", w.fail("username", err)
	}

	source, spec.Commit, err = w.repo.HeadCommit(ctx)
	if err != nil {
		return spec, "", w.fail("commit", err)
	}
	logging.Debug("Using commit %s of %s", spec.Commit, source)

	if choices := w.cfg.DetailChoices(spec.Prefix); len(choices) > 0 {
		spec.Detail, err = w.prompter.Select(ctx, q.environment(choices))
	} else {
		spec.Detail, err = w.prompter.Input(ctx, q.detail)
	}
	if err != nil {
		return spec, "", w.fail("detail", err)
	}

	if len(w.cfg.Separators) == 1 {
		spec.Separator = w.cfg.Separators[0].Value
	} else if spec.Separator, err = w.prompter.Select(ctx, q.separator); err != nil {
		return spec, "", w.fail("separator", err)
	}

	if spec.IncludeDate, err = w.prompter.Confirm(ctx, q.date); err != nil {
		return spec, "", w.fail("date", err)
	}
	if spec.IncludeDate {
		spec.Date = branch.DateStamp(w.opts.Now())
	}
	return spec, source, nil
}

func (w *Wizard) fail(step string, err error) error {
	if errors.Is(err, ErrCancelled) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		logging.Info("Cancelled during %s", step)
		return ErrCancelled
	}
	logging.WithError(err, step)
	return fmt.Errorf("%s: %w", step, err)
}
