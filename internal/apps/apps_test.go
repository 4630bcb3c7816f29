package apps

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmacinski/folio/internal/content"
	"github.com/kmacinski/folio/internal/geom"
	"github.com/kmacinski/folio/internal/layout"
	"github.com/kmacinski/folio/internal/ui"
)

func launched(t *testing.T, cmd tea.Cmd) Kind {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(LaunchMsg)
	require.True(t, ok)
	return msg.Kind
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestRegistry(t *testing.T) {
	all := All()
	require.Len(t, all, 8)
	assert.Equal(t, Finder, all[0].Kind)
	assert.Equal(t, Contact, all[7].Kind)

	info, ok := Lookup(Projects)
	require.True(t, ok)
	assert.Equal(t, "Projects", info.Name)

	k, ok := Parse("terminal")
	assert.True(t, ok)
	assert.Equal(t, Terminal, k)

	_, ok = Parse("browser")
	assert.False(t, ok)

	all[0].Name = "changed"
	assert.Equal(t, "Finder", All()[0].Name, "All returns a copy")
}

func TestInfo_Spec(t *testing.T) {
	d := layout.Desktop{Viewport: geom.Size{W: 120, H: 40}, MenuBar: 1, Dock: 3}

	info, _ := Lookup(About)
	spec := info.Spec(d)
	assert.Equal(t, "about", spec.ID)
	assert.Equal(t, "About", spec.Title)
	assert.Equal(t, "about", spec.Kind)
	assert.Equal(t, 28.0, spec.X)
	assert.Equal(t, 3.0, spec.Y)
	assert.Equal(t, 64.0, spec.Width)
	assert.False(t, spec.Minimized)

	t.Run("shrinks to a small desktop", func(t *testing.T) {
		small := layout.Desktop{Viewport: geom.Size{W: 40, H: 12}, MenuBar: 1, Dock: 3}
		info, _ := Lookup(Projects)
		spec := info.Spec(small)
		assert.Equal(t, 40.0, spec.Width)
		assert.Equal(t, 8.0, spec.Height)
		assert.Equal(t, 0.0, spec.X)
	})
}

func TestNew_PicksBody(t *testing.T) {
	doc := content.Default()
	assert.IsType(t, &FinderBody{}, New(Finder, doc, ui.DefaultStyles, nil))
	assert.IsType(t, &TerminalBody{}, New(Terminal, doc, ui.DefaultStyles, nil))
	assert.IsType(t, &Panel{}, New(Skills, doc, ui.DefaultStyles, nil))
}

func TestTerminal_Commands(t *testing.T) {
	tests := []struct {
		line   string
		output string
		launch Kind
	}{
		{"about", "Opening About app...", About},
		{"  Projects ", "Opening Projects app...", Projects},
		{"finder", "Opening Finder app...", Finder},
		{"resume", "Opening Resume app...", Resume},
		{"terminal", `Command not found: terminal. Type "help" for available commands.`, ""},
		{"ls -la", `Command not found: ls -la. Type "help" for available commands.`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			term := NewTerminal(ui.DefaultStyles, Launch)
			cmd := term.Run(tt.line)

			history := term.History()
			require.Len(t, history, 3)
			assert.Equal(t, "$ "+tt.line, history[1])
			assert.Equal(t, tt.output, history[2])

			if tt.launch == "" {
				assert.Nil(t, cmd)
				return
			}
			assert.Equal(t, tt.launch, launched(t, cmd))
		})
	}
}

func TestTerminal_HelpClearAndBlank(t *testing.T) {
	term := NewTerminal(ui.DefaultStyles, Launch)

	assert.Nil(t, term.Run("   "))
	assert.Len(t, term.History(), 1, "blank input is ignored")

	term.Run("help")
	assert.Contains(t, term.Text(), "clear - Clear terminal")

	term.Run("clear")
	assert.Empty(t, term.History())
}

func TestTerminal_TypingAndEnter(t *testing.T) {
	var got []Kind
	term := NewTerminal(ui.DefaultStyles, func(k Kind) tea.Cmd {
		got = append(got, k)
		return nil
	})
	term.SetFocus(true)

	for _, r := range "skills" {
		term.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	term.Update(enter())
	assert.Equal(t, []Kind{Skills}, got)

	view := ansi.Strip(term.View(40, 8))
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 8)
	assert.Contains(t, view, "Opening Skills app...")
}

func TestFinder_ClickLaunches(t *testing.T) {
	f := NewFinder(content.Default(), ui.DefaultStyles, Launch)
	f.View(70, 19) // header 3 rows, cards 35x8

	tests := []struct {
		x, y int
		want Kind
	}{
		{2, 4, About},
		{40, 4, Projects},
		{2, 12, Experience},
		{69, 18, Contact},
	}
	for _, tt := range tests {
		_, cmd := f.Update(tea.MouseMsg{X: tt.x, Y: tt.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.Equal(t, tt.want, launched(t, cmd))
	}

	_, cmd := f.Update(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd, "the header is not a launcher")
}

func TestFinder_Keyboard(t *testing.T) {
	f := NewFinder(content.Default(), ui.DefaultStyles, Launch)

	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 3, f.Cursor())

	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 3, f.Cursor(), "cursor stays inside the grid")

	_, cmd := f.Update(enter())
	assert.Equal(t, Contact, launched(t, cmd))
}

func TestFinder_View(t *testing.T) {
	f := NewFinder(content.Default(), ui.DefaultStyles, Launch)
	view := ansi.Strip(f.View(70, 19))
	assert.Contains(t, view, "Welcome")
	assert.Contains(t, view, content.Default().Tagline)
	for _, item := range []string{"About", "Projects", "Experience", "Contact"} {
		assert.Contains(t, view, item)
	}
}

func TestPanel_RendersSections(t *testing.T) {
	doc := content.Default()

	tests := []struct {
		kind Kind
		want string
	}{
		{Projects, doc.Projects[0].Name},
		{Experience, doc.Experience[0].Company},
		{Skills, doc.Skills[0].Category},
		{Contact, "Get in Touch"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := NewPanel(tt.kind, doc, ui.DefaultStyles)
			assert.Contains(t, p.Text(), tt.want)
		})
	}
}

func TestPanel_SetDocument(t *testing.T) {
	p := NewPanel(Projects, content.Default(), ui.DefaultStyles)
	p.View(60, 10)

	doc, err := content.Parse([]byte("name: Sam\nprojects:\n  - name: Lighthouse\n    description: beacon\n"))
	require.NoError(t, err)
	p.SetDocument(doc)

	view := ansi.Strip(p.View(60, 10))
	assert.Contains(t, view, "Lighthouse")
	assert.NotContains(t, view, content.Default().Projects[0].Name)
}

func TestPanel_ScrollsWithinHeight(t *testing.T) {
	p := NewPanel(Experience, content.Default(), ui.DefaultStyles)
	first := p.View(40, 3)
	assert.LessOrEqual(t, len(strings.Split(first, "\n")), 3)

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.NotEqual(t, first, p.View(40, 3))
}
