package replui

import (
	"fmt"
	"strings"
)

// View implements tea.Model. The repl is a minimal scrolling-history
// view: no split panes, no pinned-variable panel — just input followed
// by output in a list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("paper"))
	b.WriteByte('\n')

	historyHeight := m.height - 4
	if historyHeight < 3 {
		historyHeight = 3
	}
	b.WriteString(m.renderHistory(historyHeight))

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.Separator.Render(strings.Repeat("-", m.width)))
	b.WriteByte('\n')
	b.WriteString(m.styles.Help.Render("up/down history | :help | :reset | :quit"))

	return b.String()
}

func (m Model) renderHistory(maxLines int) string {
	if len(m.entries) == 0 {
		return m.styles.Help.Render("  Type an expression and press Enter, e.g. 5 km to mi") + "\n\n"
	}

	visible := m.visibleEntries(maxLines)
	var b strings.Builder
	for _, e := range visible {
		if e.input != "" {
			b.WriteString(m.styles.Prompt.Render("> "))
			b.WriteString(e.input)
			b.WriteByte('\n')
		}
		if e.output == "" {
			continue
		}
		if e.isError {
			b.WriteString(m.styles.Error.Render("  " + e.output))
		} else {
			b.WriteString(m.styles.Output.Render("  " + e.output))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) visibleEntries(maxLines int) []entry {
	var visible []entry
	lines := 0
	for i := len(m.entries) - 1; i >= 0; i-- {
		need := 1
		if m.entries[i].input != "" && m.entries[i].output != "" {
			need = 2
		}
		if lines+need > maxLines {
			break
		}
		visible = append([]entry{m.entries[i]}, visible...)
		lines += need
	}
	return visible
}
