// Package picker runs each prompt question as a small inline bubbletea program.
package picker

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/mkbranch/internal/logging"
	"github.com/andyrewlee/mkbranch/internal/prompt"
)

// Prompter asks questions on a terminal.
type Prompter struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

var _ prompt.Prompter = (*Prompter)(nil)

// New returns a Prompter reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Prompter {
	return &Prompter{in: in, out: out, opts: opts}
}

// Select implements prompt.Prompter.
func (p *Prompter) Select(ctx context.Context, q prompt.Question) (string, error) {
	if len(q.Options()) == 0 {
		return "", fmt.Errorf("%s: no choices", q.Field)
	}
	m, err := p.run(ctx, NewSelect(q))
	if err != nil {
		return "", err
	}
	return m.Value(), nil
}

// Input implements prompt.Prompter.
func (p *Prompter) Input(ctx context.Context, q prompt.Question) (string, error) {
	m, err := p.run(ctx, NewInput(q))
	if err != nil {
		return "", err
	}
	return m.Value(), nil
}

// Confirm implements prompt.Prompter.
func (p *Prompter) Confirm(ctx context.Context, q prompt.Question) (bool, error) {
	m, err := p.run(ctx, NewConfirm(q))
	if err != nil {
		return false, err
	}
	return m.Confirmed(), nil
}

func (p *Prompter) run(ctx context.Context, m *Model) (*Model, error) {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	}, p.opts...)

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, prompt.ErrCancelled
		}
		return nil, fmt.Errorf("%s prompt: %w", m.question.Field, err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("%s prompt: unexpected model %T", m.question.Field, final)
	}
	if fm.Cancelled() || !fm.Done() {
		logging.Info("Prompt %s cancelled", fm.question.Field)
		return nil, prompt.ErrCancelled
	}
	logging.Debug("Prompt %s answered: %q", fm.question.Field, fm.answerText())
	return fm, nil
}
