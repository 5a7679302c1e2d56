package shell

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

const maxSuggestions = 8

type keyMap struct {
	Submit key.Binding
	Accept key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter")),
	Accept: key.NewBinding(key.WithKeys("tab")),
	Next:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Prev:   key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d")),
}

// RunTUI runs the full-screen front end. Command output is printed above
// the input line and stays in the terminal's scrollback.
func RunTUI(s *Shell, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(newModel(s), opts...).Run()
	return err
}

type model struct {
	shell *Shell
	buf   *bytes.Buffer
	input textinput.Model

	suggestions []string
	selected    int

	history []string
	histPos int

	quitting bool
}

func newModel(s *Shell) model {
	buf := &bytes.Buffer{}
	s.SetOutput(buf)

	in := textinput.New()
	in.Prompt = s.Prompt()
	in.Focus()

	return model{shell: s, buf: buf, input: in}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Println(m.shell.Welcome()))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			if msg.Type == tea.KeyCtrlC && m.input.Value() != "" {
				m.input.SetValue("")
				m.suggestions = nil
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Submit):
			return m.submit()

		case key.Matches(msg, keys.Accept):
			m.accept()
			return m, nil

		case key.Matches(msg, keys.Next):
			if len(m.suggestions) > 0 {
				m.selected = (m.selected + 1) % len(m.visible())
			} else {
				m.browse(1)
			}
			return m, nil

		case key.Matches(msg, keys.Prev):
			if len(m.suggestions) > 0 {
				n := len(m.visible())
				m.selected = (m.selected + n - 1) % n
			} else {
				m.browse(-1)
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	prompt := m.input.Prompt

	m.input.SetValue("")
	m.suggestions = nil
	m.selected = 0
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)

	m.buf.Reset()
	quit := m.shell.Exec(line)
	echo := prompt + line
	output := strings.TrimRight(m.buf.String(), "\n")
	m.input.Prompt = m.shell.Prompt()

	printed := echo
	if output != "" {
		printed += "\n" + output
	}
	if quit {
		m.quitting = true
		return m, tea.Sequence(tea.Println(printed), tea.Quit)
	}
	return m, tea.Println(printed)
}

// accept replaces the word under the cursor with the selected suggestion.
func (m *model) accept() {
	visible := m.visible()
	if len(visible) == 0 {
		return
	}
	value := m.input.Value()
	head := value[:strings.LastIndexByte(value, ' ')+1]
	m.input.SetValue(head + visible[m.selected] + " ")
	m.input.CursorEnd()
	m.refresh()
}

// browse walks the history by delta entries.
func (m *model) browse(delta int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.histPos + delta
	switch {
	case pos < 0:
		pos = 0
	case pos >= len(m.history):
		m.histPos = len(m.history)
		m.input.SetValue("")
		return
	}
	m.histPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *model) refresh() {
	m.selected = 0
	if strings.TrimSpace(m.input.Value()) == "" {
		m.suggestions = nil
		return
	}
	m.suggestions = m.shell.Complete(m.input.Value())
}

func (m model) visible() []string {
	if len(m.suggestions) > maxSuggestions {
		return m.suggestions[:maxSuggestions]
	}
	return m.suggestions
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.input.View())

	visible := m.visible()
	if len(visible) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	for i, s := range visible {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.selected {
			b.WriteString(style.Selected(s))
		} else {
			b.WriteString(style.Muted(s))
		}
	}
	if extra := len(m.suggestions) - len(visible); extra > 0 {
		b.WriteString(style.Muted("  +" + strconv.Itoa(extra)))
	}
	return b.String()
}
