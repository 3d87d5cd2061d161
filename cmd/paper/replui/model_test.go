package replui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paperlang/paper/config"
	"github.com/paperlang/paper/data"
	"github.com/paperlang/paper/paper"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	loader, err := data.NewLoader()
	if err != nil {
		t.Fatalf("data.NewLoader(): %v", err)
	}
	session := paper.NewSession(loader, paper.DefaultSettings())
	return New(session, config.Styles{})
}

func typeAndEnter(m Model, text string) Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestReplEvaluatesExpression(t *testing.T) {
	m := newTestModel(t)
	m = typeAndEnter(m, "2 + 2")

	if len(m.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(m.entries))
	}
	if m.entries[0].output != "4" {
		t.Errorf("output = %q, want \"4\"", m.entries[0].output)
	}
	if m.entries[0].isError {
		t.Error("isError = true, want false")
	}
}

func TestReplRetainsVariablesAcrossLines(t *testing.T) {
	m := newTestModel(t)
	m = typeAndEnter(m, "x = 10")
	m = typeAndEnter(m, "x + 5")

	if len(m.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.entries))
	}
	if m.entries[1].output != "15" {
		t.Errorf("output = %q, want \"15\"", m.entries[1].output)
	}
}

func TestReplResetClearsVariables(t *testing.T) {
	m := newTestModel(t)
	m = typeAndEnter(m, "x = 10")
	m = typeAndEnter(m, ":reset")
	m = typeAndEnter(m, "x")

	last := m.entries[len(m.entries)-1]
	if !last.isError {
		t.Error("expected UndefinedVariable error after :reset")
	}
}

func TestReplQuitCommand(t *testing.T) {
	m := newTestModel(t)
	m = typeAndEnter(m, ":quit")

	if !m.Quitting() {
		t.Error("Quitting() = false after :quit")
	}
}

func TestReplHistoryNavigation(t *testing.T) {
	m := newTestModel(t)
	m = typeAndEnter(m, "1 + 1")
	m = typeAndEnter(m, "2 + 2")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "2 + 2" {
		t.Errorf("history up = %q, want \"2 + 2\"", m.input.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.input.Value() != "1 + 1" {
		t.Errorf("history up again = %q, want \"1 + 1\"", m.input.Value())
	}
}
