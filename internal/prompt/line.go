package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/andyrewlee/mkbranch/internal/validation"
)

// LinePrompter asks questions as numbered lists over plain text streams.
// Reads happen on one background goroutine so a cancelled context
// unblocks a pending prompt.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLinePrompter returns a prompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, lines: make(chan lineResult)}
}

// Select presents the options and returns the chosen value.
func (p *LinePrompter) Select(ctx context.Context, q Question) (string, error) {
	opts := q.Options()
	if len(opts) == 0 {
		return "", fmt.Errorf("%s: no choices", q.Field)
	}

	fmt.Fprintln(p.out, q.Message)
	for i, label := range Labels(opts) {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, label)
	}

	for {
		fmt.Fprint(p.out, "Enter number: ")
		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		idx, convErr := strconv.Atoi(answer)
		if convErr != nil || idx < 1 || idx > len(opts) {
			fmt.Fprintln(p.out, "Invalid selection, try again.")
			continue
		}
		if q.IsManual(idx - 1) {
			return p.Input(ctx, q.ManualQuestion())
		}
		return Selected(q, idx-1), nil
	}
}

// Input asks for non-empty free text.
func (p *LinePrompter) Input(ctx context.Context, q Question) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", q.Message)
		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		answer = validation.SanitizeInput(answer)
		if err := validation.ValidateField(q.Field, answer); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return answer, nil
	}
}

// Confirm asks a yes/no question. An empty answer takes q.Default.
func (p *LinePrompter) Confirm(ctx context.Context, q Question) (bool, error) {
	hint := "[y/N]"
	if q.Default {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "%s %s: ", q.Message, hint)
		answer, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return q.Default, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// readLine returns the next trimmed line. End of input before any text
// or a cancelled ctx cancels the prompt.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrCancelled
	}
	p.once.Do(func() { go p.readLoop() })

	select {
	case <-ctx.Done():
		return "", ErrCancelled
	case r := <-p.lines:
		return r.line, r.err
	}
}

func (p *LinePrompter) readLoop() {
	for {
		line, err := p.in.ReadString('\n')
		r := lineResult{line: strings.TrimSpace(line)}
		if err != nil {
			switch {
			case !errors.Is(err, io.EOF):
				r.err = err
			case r.line == "":
				r.err = ErrCancelled
			}
		}
		p.lines <- r
		if err != nil {
			break
		}
	}
	// Later reads see the input as closed.
	for {
		p.lines <- lineResult{err: ErrCancelled}
	}
}
