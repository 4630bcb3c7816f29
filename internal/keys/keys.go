package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Escape   key.Binding

	// Windows
	NewFinder   key.Binding
	CloseWindow key.Binding

	// Edit
	SelectAll key.Binding
	Copy      key.Binding

	// View
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ResetZoom key.Binding

	// Dialogs
	Help    key.Binding
	Confirm key.Binding
	Deny    key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings. Terminals never deliver
// Cmd, and cannot report Ctrl together with = or 0, so zoom sits on Alt.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←/h", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→/l", "move right"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next window"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev window"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	NewFinder: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "new finder window"),
	),
	CloseWindow: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("C-w", "close window"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("C-a", "select all"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "copy"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("alt+=", "alt++"),
		key.WithHelp("M-=", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("alt+-", "ctrl+_"),
		key.WithHelp("M--", "zoom out"),
	),
	ResetZoom: key.NewBinding(
		key.WithKeys("alt+0"),
		key.WithHelp("M-0", "actual size"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("C-k", "keyboard shortcuts"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Deny: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("C-q", "quit"),
	),
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.NewFinder,
		DefaultKeyMap.CloseWindow,
		DefaultKeyMap.Tab,
		DefaultKeyMap.SelectAll,
		DefaultKeyMap.Copy,
		DefaultKeyMap.ZoomIn,
		DefaultKeyMap.ZoomOut,
		DefaultKeyMap.ResetZoom,
		DefaultKeyMap.Help,
		DefaultKeyMap.Escape,
		DefaultKeyMap.Quit,
	}
}
