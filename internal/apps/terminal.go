package apps

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/folio/internal/ui"
	"github.com/kmacinski/folio/internal/window"
)

const (
	terminalWelcome = `Welcome to Terminal. Type "help" for available commands.`
	terminalHelp    = `Available commands:
  help - Show this help message
  about - Open About app
  projects - Open Projects app
  experience - Open Experience app
  skills - Open Skills app
  contact - Open Contact app
  resume - Open Resume app
  finder - Open Finder app
  clear - Clear terminal`
)

// terminalCommands maps launch commands to applications
var terminalCommands = map[string]Kind{
	"about":      About,
	"projects":   Projects,
	"experience": Experience,
	"skills":     Skills,
	"contact":    Contact,
	"resume":     Resume,
	"finder":     Finder,
}

type historyLine struct {
	input bool
	text  string
}

// TerminalBody is a toy command interpreter
type TerminalBody struct {
	window.Base
	input   textinput.Model
	history []historyLine
	launch  Launcher
}

// NewTerminal creates a terminal body
func NewTerminal(styles ui.Styles, launch Launcher) *TerminalBody {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = "help"

	return &TerminalBody{
		Base:    window.NewBase(string(Terminal), styles),
		input:   ti,
		history: []historyLine{{text: terminalWelcome}},
		launch:  launch,
	}
}

// SetFocus focuses the prompt along with the window
func (t *TerminalBody) SetFocus(focused bool) {
	t.Base.SetFocus(focused)
	if focused {
		t.input.Focus()
	} else {
		t.input.Blur()
	}
}

// History returns the transcript lines
func (t *TerminalBody) History() []string {
	out := make([]string, len(t.history))
	for i, l := range t.history {
		out[i] = l.text
	}
	return out
}

// Update handles prompt input
func (t *TerminalBody) Update(msg tea.Msg) (window.Body, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		return t, t.submit()
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// Run executes one command line as if typed at the prompt
func (t *TerminalBody) Run(line string) tea.Cmd {
	t.input.SetValue(line)
	return t.submit()
}

func (t *TerminalBody) submit() tea.Cmd {
	raw := t.input.Value()
	t.input.Reset()
	command := strings.ToLower(strings.TrimSpace(raw))
	if command == "" {
		return nil
	}

	t.history = append(t.history, historyLine{input: true, text: "$ " + raw})
	if command == "clear" {
		t.history = nil
		return nil
	}

	out, cmd := t.exec(command)
	t.history = append(t.history, historyLine{text: out})
	return cmd
}

func (t *TerminalBody) exec(command string) (string, tea.Cmd) {
	if command == "help" {
		return terminalHelp, nil
	}
	if k, ok := terminalCommands[command]; ok {
		info, _ := Lookup(k)
		return fmt.Sprintf("Opening %s app...", info.Name), t.launch(k)
	}
	return fmt.Sprintf(`Command not found: %s. Type "help" for available commands.`, command), nil
}

// View renders the transcript above a separator and the prompt. The
// transcript is pinned to its newest lines.
func (t *TerminalBody) View(width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	s := t.Styles()

	var lines []string
	for _, l := range t.history {
		style := s.ListItem
		if l.input {
			style = s.Prompt
		}
		wrapped := lipgloss.NewStyle().Width(width).Render(l.text)
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, style.Render(line))
		}
	}

	room := max(0, height-2)
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for len(lines) < room {
		lines = append(lines, "")
	}

	t.input.Width = max(1, width-lipgloss.Width(t.input.Prompt)-1)
	if height >= 2 {
		lines = append(lines, s.Muted.Render(strings.Repeat("─", width)))
	}
	lines = append(lines, t.input.View())
	return strings.Join(lines, "\n")
}

// Text returns the transcript
func (t *TerminalBody) Text() string {
	return strings.Join(t.History(), "\n")
}
