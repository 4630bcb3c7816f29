// Package apps defines the desktop's applications: the closed set of kinds,
// their names and default sizes, and the bodies that fill their windows.
package apps

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/folio/internal/geom"
	"github.com/kmacinski/folio/internal/layout"
	"github.com/kmacinski/folio/internal/wm"
)

// Kind tags an application
type Kind string

const (
	Finder     Kind = "finder"
	About      Kind = "about"
	Projects   Kind = "projects"
	Experience Kind = "experience"
	Skills     Kind = "skills"
	Terminal   Kind = "terminal"
	Resume     Kind = "resume"
	Contact    Kind = "contact"
)

// OpenOffset is how far below the menu bar fresh windows open
const OpenOffset = 2

// Info describes one application
type Info struct {
	Kind Kind
	Name string
	Size geom.Size
}

// registry is in dock order
var registry = []Info{
	{Kind: Finder, Name: "Finder", Size: geom.Size{W: 72, H: 20}},
	{Kind: About, Name: "About", Size: geom.Size{W: 64, H: 18}},
	{Kind: Projects, Name: "Projects", Size: geom.Size{W: 80, H: 24}},
	{Kind: Experience, Name: "Experience", Size: geom.Size{W: 72, H: 20}},
	{Kind: Skills, Name: "Skills", Size: geom.Size{W: 68, H: 20}},
	{Kind: Terminal, Name: "Terminal", Size: geom.Size{W: 64, H: 18}},
	{Kind: Resume, Name: "Resume", Size: geom.Size{W: 72, H: 20}},
	{Kind: Contact, Name: "Contact", Size: geom.Size{W: 56, H: 16}},
}

// All returns every application in dock order
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the application with the given kind
func Lookup(k Kind) (Info, bool) {
	for _, info := range registry {
		if info.Kind == k {
			return info, true
		}
	}
	return Info{}, false
}

// Parse converts a stored kind back to its tag
func Parse(s string) (Kind, bool) {
	info, ok := Lookup(Kind(s))
	return info.Kind, ok
}

// Spec builds a fresh launch spec: default size (shrunk to fit the
// desktop), centered horizontally, just below the menu bar. The window id
// is the kind, so each application has at most one window.
func (i Info) Spec(d layout.Desktop) wm.Spec {
	size := geom.Size{
		W: math.Min(i.Size.W, d.Viewport.W),
		H: math.Min(i.Size.H, math.Max(1, d.Viewport.H-d.MenuBar-d.Dock)),
	}
	pos := d.Centered(size, OpenOffset)
	return wm.Spec{
		ID:     string(i.Kind),
		Title:  i.Name,
		Kind:   string(i.Kind),
		X:      pos.X,
		Y:      pos.Y,
		Width:  size.W,
		Height: size.H,
	}
}

// LaunchMsg asks the desktop to open an application
type LaunchMsg struct {
	Kind Kind
}

// Launcher turns a kind into the command that opens it
type Launcher func(Kind) tea.Cmd

// Launch returns a command emitting LaunchMsg
func Launch(k Kind) tea.Cmd {
	return func() tea.Msg {
		return LaunchMsg{Kind: k}
	}
}
