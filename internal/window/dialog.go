package window

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/kmacinski/folio/internal/ui"
)

// Dialog is a modal with a title, a few lines of text and a footer hint
type Dialog struct {
	Base
	title  string
	lines  []string
	footer string
}

// NewDialog creates a new dialog
func NewDialog(name, title string, lines []string, footer string, styles ui.Styles) *Dialog {
	return &Dialog{
		Base:   NewBase(name, styles),
		title:  title,
		lines:  lines,
		footer: footer,
	}
}

// Update handles input (modal keys handled by app)
func (d *Dialog) Update(msg tea.Msg) (Body, tea.Cmd) {
	return d, nil
}

// Text returns the dialog as plain text
func (d *Dialog) Text() string {
	return d.title + "\n" + strings.Join(d.lines, "\n")
}

// View renders the dialog, sized to its content but never wider or taller
// than the given bounds
func (d *Dialog) View(width, height int) string {
	textWidth := ansi.StringWidth(d.title)
	for _, l := range d.lines {
		textWidth = max(textWidth, ansi.StringWidth(l))
	}
	textWidth = max(textWidth, ansi.StringWidth(d.footer))
	textWidth = min(textWidth, width-6)
	if textWidth < 1 || height < 5 {
		return ""
	}

	body := []string{d.styles.ModalTitle.Render(d.title)}
	body = append(body, d.lines...)
	if d.footer != "" {
		body = append(body, "", d.styles.Muted.Render(d.footer))
	}

	return d.styles.Modal.
		Width(textWidth + 4).
		Render(fit(strings.Join(body, "\n"), textWidth, height-4))
}
