package picker

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/mkbranch/internal/ui/common"
)

// View renders the question inline. A finished question collapses to one
// line echoing the answer so the terminal keeps a transcript.
func (m *Model) View() tea.View {
	var view tea.View
	view.SetContent(m.render())
	return view
}

func (m *Model) render() string {
	s := m.styles
	var b strings.Builder

	switch {
	case m.done:
		b.WriteString(s.Success.Render(common.Icons.Check) + " ")
		b.WriteString(s.Question.Render(m.message()) + " ")
		b.WriteString(s.Answer.Render(m.answerText()))
		b.WriteString("\n")
		return b.String()
	case m.cancelled:
		b.WriteString(s.Error.Render(common.Icons.Cross) + " ")
		b.WriteString(s.Question.Render(m.message()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(s.Cursor.Render(common.Icons.Question) + " ")
	b.WriteString(s.Question.Render(m.message()))

	switch m.mode {
	case modeSelect:
		b.WriteString("\n")
		for i, label := range m.labels {
			label = m.truncate(label, 4)
			if i == m.cursor {
				b.WriteString(s.Cursor.Render(common.Icons.Cursor) + " " + s.Selected.Render(label))
			} else {
				b.WriteString("  " + s.Option.Render(label))
			}
			b.WriteString("\n")
		}
	case modeInput:
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.errMsg != "" {
			b.WriteString(s.Error.Render(m.errMsg))
			b.WriteString("\n")
		}
	case modeConfirm:
		b.WriteString("  ")
		yes, no := s.Button.Render("Yes"), s.Active.Render("No")
		if m.yes {
			yes, no = s.Active.Render("Yes"), s.Button.Render("No")
		}
		b.WriteString(yes + "  " + no)
		b.WriteString("\n")
	}

	b.WriteString(s.Help.Render(m.help.ShortHelpView(m.helpBindings())))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) message() string {
	if m.mode == modeInput && m.manual {
		return m.question.ManualQuestion().Message
	}
	return m.question.Message
}

func (m *Model) answerText() string {
	if m.mode == modeConfirm {
		if m.yes {
			return "Yes"
		}
		return "No"
	}
	return m.value
}

// truncate fits s into the terminal width minus margin display cells.
func (m *Model) truncate(s string, margin int) string {
	if m.width <= margin {
		return s
	}
	return ansi.Truncate(s, m.width-margin, "…")
}
