// Package window renders one window entity as a framed view: a title bar
// carrying the drag handle and the close/minimize/maximize controls, and a
// bordered body supplied by the application.
package window

import tea "github.com/charmbracelet/bubbletea"

// Body defines the interface for everything that can fill a window
type Body interface {
	// Update handles input when the window is on top
	Update(msg tea.Msg) (Body, tea.Cmd)

	// View renders the body content into width x height cells
	View(width, height int) string

	// Focus state
	Focused() bool
	SetFocus(bool)

	// Identity
	Name() string

	// Text returns the body as plain text, used for copy
	Text() string
}
