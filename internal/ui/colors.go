package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the desktop
type Colors struct {
	Desktop         lipgloss.Color
	MenuBar         lipgloss.Color
	MenuBarText     lipgloss.Color
	TitleBar        lipgloss.Color
	TitleText       lipgloss.Color
	Close           lipgloss.Color
	Minimize        lipgloss.Color
	Maximize        lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Dock            lipgloss.Color
	Header          lipgloss.Color
	Accent          lipgloss.Color
	Selection       lipgloss.Color
	Muted           lipgloss.Color
	Text            lipgloss.Color
}

// DefaultColors returns the default color palette
var DefaultColors = Colors{
	Desktop:         lipgloss.Color("#1e1e2e"),
	MenuBar:         lipgloss.Color("#11111b"),
	MenuBarText:     lipgloss.Color("#cdd6f4"),
	TitleBar:        lipgloss.Color("#313244"),
	TitleText:       lipgloss.Color("#cdd6f4"),
	Close:           lipgloss.Color("#f38ba8"),
	Minimize:        lipgloss.Color("#f9e2af"),
	Maximize:        lipgloss.Color("#a6e3a1"),
	BorderFocused:   lipgloss.Color("#89b4fa"),
	BorderUnfocused: lipgloss.Color("#45475a"),
	Dock:            lipgloss.Color("#181825"),
	Header:          lipgloss.Color("#89b4fa"),
	Accent:          lipgloss.Color("#a6e3a1"),
	Selection:       lipgloss.Color("#45475a"),
	Muted:           lipgloss.Color("#6c7086"),
	Text:            lipgloss.Color("#cdd6f4"),
}
