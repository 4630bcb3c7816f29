package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the desktop
type Styles struct {
	// Desktop
	Desktop lipgloss.Style

	// Menu bar
	MenuBar       lipgloss.Style
	MenuTitle     lipgloss.Style
	MenuTitleOpen lipgloss.Style
	MenuDropdown  lipgloss.Style
	MenuItem      lipgloss.Style
	MenuShortcut  lipgloss.Style

	// Window chrome
	TitleBar         lipgloss.Style
	TitleBarFocused  lipgloss.Style
	TitleBarGrabbing lipgloss.Style
	CloseButton      lipgloss.Style
	MinimizeButton   lipgloss.Style
	MaximizeButton   lipgloss.Style
	WindowFocused    lipgloss.Style
	WindowUnfocused  lipgloss.Style
	Selected         lipgloss.Style

	// Dock
	Dock          lipgloss.Style
	DockItem      lipgloss.Style
	DockItemOpen  lipgloss.Style
	DockIndicator lipgloss.Style

	// Content
	Heading  lipgloss.Style
	ListItem lipgloss.Style
	Tag      lipgloss.Style
	Card     lipgloss.Style
	Prompt   lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	// General
	Muted lipgloss.Style
	Bold  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Desktop: lipgloss.NewStyle().
			Background(c.Desktop),

		MenuBar: lipgloss.NewStyle().
			Background(c.MenuBar).
			Foreground(c.MenuBarText),
		MenuTitle: lipgloss.NewStyle().
			Background(c.MenuBar).
			Foreground(c.MenuBarText),
		MenuTitleOpen: lipgloss.NewStyle().
			Background(c.BorderFocused).
			Foreground(c.MenuBar),
		MenuDropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderUnfocused).
			Background(c.MenuBar),
		MenuItem: lipgloss.NewStyle().
			Foreground(c.Text),
		MenuShortcut: lipgloss.NewStyle().
			Foreground(c.Muted),

		TitleBar: lipgloss.NewStyle().
			Background(c.TitleBar).
			Foreground(c.Muted),
		TitleBarFocused: lipgloss.NewStyle().
			Background(c.TitleBar).
			Foreground(c.TitleText).
			Bold(true),
		TitleBarGrabbing: lipgloss.NewStyle().
			Background(c.BorderFocused).
			Foreground(c.MenuBar).
			Bold(true),
		CloseButton: lipgloss.NewStyle().
			Background(c.TitleBar).
			Foreground(c.Close),
		MinimizeButton: lipgloss.NewStyle().
			Background(c.TitleBar).
			Foreground(c.Minimize),
		MaximizeButton: lipgloss.NewStyle().
			Background(c.TitleBar).
			Foreground(c.Maximize),
		WindowFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, true, true).
			BorderForeground(c.BorderFocused),
		WindowUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, true, true).
			BorderForeground(c.BorderUnfocused),
		Selected: lipgloss.NewStyle().
			Background(c.Selection),

		Dock: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderUnfocused).
			Background(c.Dock),
		DockItem: lipgloss.NewStyle().
			Foreground(c.Muted).
			Background(c.Dock),
		DockItemOpen: lipgloss.NewStyle().
			Foreground(c.Text).
			Background(c.Dock).
			Bold(true),
		DockIndicator: lipgloss.NewStyle().
			Foreground(c.Accent).
			Background(c.Dock),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Header),
		ListItem: lipgloss.NewStyle().
			Foreground(c.Text),
		Tag: lipgloss.NewStyle().
			Foreground(c.Accent),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderUnfocused).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(c.Accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Header).
			MarginBottom(1),

		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
