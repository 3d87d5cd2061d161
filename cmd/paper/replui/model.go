// Package replui implements paper's interactive repl: a thin,
// scrolling-history input/output loop built on bubbletea. It is
// deliberately not a full multi-pane editor with tab-completion and a
// pinned-variables panel — that's out of scope here.
package replui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/paperlang/paper/config"
	"github.com/paperlang/paper/paper"
)

// entry is one input/output pair shown in the scrolling history, or a
// rendered heading/prose line with no input side.
type entry struct {
	input   string
	output  string
	isError bool
}

// Model is the repl's bubbletea model.
type Model struct {
	session *paper.Session
	styles  config.Styles

	input   textinput.Model
	history []string
	entries []entry

	historyIdx int
	width      int
	height     int
	quitting   bool
	err        error
}

var (
	markdownRenderer     *glamour.TermRenderer
	markdownRendererOnce sync.Once
)

func markdown() *glamour.TermRenderer {
	markdownRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(70))
		if err == nil {
			markdownRenderer = r
		}
	})
	return markdownRenderer
}

// New creates a repl Model bound to session, styled by styles.
func New(session *paper.Session, styles config.Styles) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "e.g. 5 km to mi"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 70

	return Model{
		session:    session,
		styles:     styles,
		input:      ti,
		historyIdx: -1,
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 6
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyUp:
		return m.historyUp(), nil
	case tea.KeyDown:
		return m.historyDown(), nil
	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) historyUp() Model {
	if len(m.history) == 0 {
		return m
	}
	if m.historyIdx == -1 {
		m.historyIdx = len(m.history) - 1
	} else if m.historyIdx > 0 {
		m.historyIdx--
	}
	m.input.SetValue(m.history[m.historyIdx])
	return m
}

func (m Model) historyDown() Model {
	if m.historyIdx == -1 {
		return m
	}
	m.historyIdx++
	if m.historyIdx >= len(m.history) {
		m.historyIdx = -1
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.historyIdx])
	}
	return m
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.err = nil
	m.input.SetValue("")
	m.historyIdx = -1

	if line == "" {
		return m, nil
	}

	switch line {
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	case ":help", ":h":
		m.entries = append(m.entries, entry{output: helpText()})
		return m, nil
	case ":reset":
		m.session.Reset()
		m.entries = append(m.entries, entry{output: "(variables cleared)"})
		return m, nil
	}

	if len(m.history) == 0 || m.history[len(m.history)-1] != line {
		m.history = append(m.history, line)
	}

	out := m.session.Eval(line + "\n")
	for _, r := range out.Results {
		if r.Kind == "empty" {
			continue
		}
		e := entry{input: line}
		switch {
		case r.Err != "":
			e.output = r.Err
			e.isError = true
		case r.Result != "":
			e.output = r.Result
		case r.Kind == "heading" || r.Kind == "text":
			e.output = renderMarkdown(r.Source)
		}
		m.entries = append(m.entries, e)
	}
	for _, d := range out.Errors.Lexer {
		m.entries = append(m.entries, entry{input: line, output: d.Message, isError: true})
	}
	for _, d := range out.Errors.Parser {
		m.entries = append(m.entries, entry{input: line, output: d.Message, isError: true})
	}

	return m, nil
}

func renderMarkdown(source string) string {
	r := markdown()
	if r == nil {
		return source
	}
	rendered, err := r.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimSpace(rendered)
}

func helpText() string {
	return strings.TrimSpace(`
paper repl

  <expression>     evaluate and show the result
  x = <expression> bind a variable for later lines
  :help, :h        show this help
  :reset           clear all variables
  :quit, :q        exit

Examples:
  salary = 5000 USD
  salary / 12
  5 km to mi
`)
}

// Quitting reports whether the repl loop should exit.
func (m Model) Quitting() bool { return m.quitting }
