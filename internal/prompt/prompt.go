// Package prompt defines the questions mkbranch asks and a line-based
// prompter for non-interactive terminals.
package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/mkbranch/internal/config"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// Question is one step of the prompt sequence.
type Question struct {
	Field       string // answer name used in logs and validation errors
	Message     string
	Choices     []config.Choice
	AllowManual bool
	ManualLabel string
	// ManualMessage is asked after the manual entry is picked.
	ManualMessage string
	Placeholder   string
	Default       bool // confirm only
}

// Prompter asks questions and returns the answers.
type Prompter interface {
	Select(ctx context.Context, q Question) (string, error)
	Input(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, q Question) (bool, error)
}

// Options returns the choices with the manual entry appended when allowed.
// The manual entry has an empty Value.
func (q Question) Options() []config.Choice {
	opts := append([]config.Choice(nil), q.Choices...)
	if q.AllowManual {
		opts = append(opts, config.Choice{Description: q.manualLabel()})
	}
	return opts
}

// IsManual reports whether index i of Options is the manual entry.
func (q Question) IsManual(i int) bool {
	return q.AllowManual && i == len(q.Choices)
}

// ManualQuestion is the free-text follow-up of a manual pick.
func (q Question) ManualQuestion() Question {
	msg := q.ManualMessage
	if msg == "" {
		msg = q.Message
	}
	return Question{Field: q.Field, Message: msg, Placeholder: q.Placeholder}
}

func (q Question) manualLabel() string {
	if q.ManualLabel == "" {
		return "Enter manually"
	}
	return q.ManualLabel
}

// Labels renders choices as aligned display strings. Values are padded by
// display width so descriptions line up even when values contain wide runes.
func Labels(choices []config.Choice) []string {
	width := 0
	for _, ch := range choices {
		if w := runewidth.StringWidth(ch.Value); w > width {
			width = w
		}
	}

	labels := make([]string, len(choices))
	for i, ch := range choices {
		switch {
		case ch.Value == "":
			labels[i] = ch.Description
		case ch.Description == "":
			labels[i] = ch.Value
		default:
			labels[i] = runewidth.FillRight(ch.Value, width) + "  (" + ch.Description + ")"
		}
	}
	return labels
}

// Selected returns the value for option i, or "" for the manual entry.
func Selected(q Question, i int) string {
	opts := q.Options()
	if i < 0 || i >= len(opts) {
		return ""
	}
	return strings.TrimSpace(opts[i].Value)
}
