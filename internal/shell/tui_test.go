package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeText(m model, text string) model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(model)
}

func press(m model, k tea.KeyType) (model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(model), cmd
}

func TestModel_Suggestions(t *testing.T) {
	sh, _, _ := newTestShell(t)
	m := newModel(sh)

	m = typeText(m, "ro")
	require.Equal(t, []string{"roll"}, m.suggestions)
	require.Contains(t, m.View(), "roll")

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, "roll ", m.input.Value())
	require.Empty(t, m.suggestions)
}

func TestModel_CycleAndAccept(t *testing.T) {
	sh, _, _ := newTestShell(t)
	m := newModel(sh)

	m = typeText(m, "session ")
	require.Equal(t, []string{"hide", "list", "ls", "unhide", "whois"}, m.suggestions)

	m, _ = press(m, tea.KeyDown)
	require.Equal(t, 1, m.selected)
	m, _ = press(m, tea.KeyUp)
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, 4, m.selected)

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, "session whois ", m.input.Value())
}

func TestModel_SubmitRunsCommand(t *testing.T) {
	sh, _, _ := newTestShell(t)
	m := newModel(sh)

	m = typeText(m, "login Alex")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, "", m.input.Value())
	require.Contains(t, m.buf.String(), "Logged in as Alex.")
	require.Equal(t, "Alex$ ", m.input.Prompt)
	require.Equal(t, []string{"login Alex"}, m.history)

	m, _ = press(m, tea.KeyUp)
	require.Equal(t, "login Alex", m.input.Value())
	m, _ = press(m, tea.KeyDown)
	require.Equal(t, "", m.input.Value())
}

func TestModel_Quit(t *testing.T) {
	sh, _, _ := newTestShell(t)
	m := newModel(sh)

	m = typeText(m, "half typed")
	m, cmd := press(m, tea.KeyCtrlC)
	require.Nil(t, cmd)
	require.Equal(t, "", m.input.Value())
	require.False(t, m.quitting)

	m, cmd = press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.Equal(t, "", m.View())
}

func TestModel_ExitCommand(t *testing.T) {
	sh, _, _ := newTestShell(t)
	m := newModel(sh)

	m = typeText(m, "exit")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
}
