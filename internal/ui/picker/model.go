package picker

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/mkbranch/internal/config"
	"github.com/andyrewlee/mkbranch/internal/prompt"
	"github.com/andyrewlee/mkbranch/internal/ui/common"
	"github.com/andyrewlee/mkbranch/internal/validation"
)

type mode int

const (
	modeSelect mode = iota
	modeInput
	modeConfirm
)

// Model is a single inline question. It quits the program once answered.
type Model struct {
	question prompt.Question
	mode     mode

	options []config.Choice
	labels  []string
	cursor  int

	input  textinput.Model
	manual bool // input reached from the manual list entry
	errMsg string

	yes bool

	width  int
	styles common.Styles
	keys   keyMap
	help   help.Model

	done      bool
	cancelled bool
	value     string
}

func newModel(q prompt.Question, m mode) *Model {
	ti := textinput.New()
	ti.Prompt = common.Icons.Cursor + " "
	ti.Placeholder = q.Placeholder
	ti.CharLimit = 100
	ti.SetWidth(40)
	ti.SetVirtualCursor(true)

	model := &Model{
		question: q,
		mode:     m,
		input:    ti,
		yes:      q.Default,
		styles:   common.DefaultStyles(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	if m == modeSelect {
		model.options = q.Options()
		model.labels = prompt.Labels(model.options)
	}
	if m == modeInput {
		model.input.Focus()
	}
	return model
}

// NewSelect returns a list question.
func NewSelect(q prompt.Question) *Model { return newModel(q, modeSelect) }

// NewInput returns a free-text question.
func NewInput(q prompt.Question) *Model { return newModel(q, modeInput) }

// NewConfirm returns a yes/no question.
func NewConfirm(q prompt.Question) *Model { return newModel(q, modeConfirm) }

// Value returns the answer of a completed select or input question.
func (m *Model) Value() string { return m.value }

// Confirmed returns the answer of a completed confirm question.
func (m *Model) Confirmed() bool { return m.yes }

// Done reports whether the question was answered.
func (m *Model) Done() bool { return m.done }

// Cancelled reports whether the user aborted the question.
func (m *Model) Cancelled() bool { return m.cancelled }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done || m.cancelled {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.SetWidth(min(60, msg.Width-4))
		}
		return m, nil

	case tea.KeyPressMsg:
		if m.mode == modeInput && m.manual && key.Matches(msg, m.keys.Back) {
			m.backToList()
			return m, nil
		}
		if key.Matches(msg, m.keys.Cancel) {
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeSelect:
			return m.updateSelect(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeInput:
			if key.Matches(msg, m.keys.Submit) {
				return m.submitInput()
			}
		}
	}

	if m.mode == modeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.errMsg != "" && m.input.Value() != "" {
			m.errMsg = ""
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSelect(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	n := len(m.options)
	if n == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % n
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = n - 1
		}
	case key.Matches(msg, m.keys.Submit):
		if m.question.IsManual(m.cursor) {
			m.toManual()
			return m, nil
		}
		m.value = prompt.Selected(m.question, m.cursor)
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.yes = true
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.No):
		m.yes = false
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.yes = !m.yes
	case key.Matches(msg, m.keys.Submit):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) submitInput() (tea.Model, tea.Cmd) {
	value := validation.SanitizeInput(m.input.Value())
	if err := validation.ValidateField(m.question.Field, value); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.value = value
	m.done = true
	return m, tea.Quit
}

func (m *Model) toManual() {
	m.mode = modeInput
	m.manual = true
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) backToList() {
	m.mode = modeSelect
	m.manual = false
	m.errMsg = ""
	m.input.Blur()
}

func (m *Model) helpBindings() []key.Binding {
	switch m.mode {
	case modeSelect:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Submit, m.keys.Cancel}
	case modeConfirm:
		return []key.Binding{m.keys.Toggle, m.keys.Yes, m.keys.No, m.keys.Submit}
	}
	if m.manual {
		return []key.Binding{m.keys.Submit, m.keys.Back}
	}
	return []key.Binding{m.keys.Submit, m.keys.Cancel}
}
