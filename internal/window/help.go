package window

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/folio/internal/keys"
	"github.com/kmacinski/folio/internal/ui"
)

// Help displays the keyboard shortcuts dialog
type Help struct {
	Base
}

// NewHelp creates a new help dialog
func NewHelp(styles ui.Styles) *Help {
	return &Help{
		Base: NewBase("help", styles),
	}
}

// Update handles input (modal keys handled by app)
func (h *Help) Update(msg tea.Msg) (Body, tea.Cmd) {
	return h, nil
}

// Text returns the shortcut table as plain text
func (h *Help) Text() string {
	var b strings.Builder
	for _, binding := range keys.HelpBindings() {
		fmt.Fprintf(&b, "%-8s %s\n", binding.Help().Key, binding.Help().Desc)
	}
	return b.String()
}

// View renders the help content
func (h *Help) View(width, height int) string {
	textWidth := width - 6      // padding and border
	contentHeight := height - 4 // padding and border

	if textWidth < 1 || contentHeight < 1 {
		return ""
	}

	var lines []string
	lines = append(lines, h.styles.ModalTitle.Render("Keyboard Shortcuts"))

	for _, b := range keys.HelpBindings() {
		keyStyle := h.styles.Bold.Width(10)
		line := fmt.Sprintf("%s %s", keyStyle.Render(b.Help().Key), h.styles.ListItem.Render(b.Help().Desc))
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, h.styles.Muted.Render("Press C-k or Esc to close"))

	return h.styles.Modal.
		Width(width - 2).
		MaxHeight(height).
		Render(fit(strings.Join(lines, "\n"), textWidth, contentHeight))
}
