package wm

import "github.com/kmacinski/folio/internal/geom"

// Spec describes a window to open. Launchers (dock, finder, terminal,
// shortcuts, menus) all produce values of this shape.
type Spec struct {
	ID        string
	Title     string
	Kind      string
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Minimized bool
	Maximized bool
}

// Entity is the tracked state of one open window
type Entity struct {
	ID        string
	Title     string
	Kind      string
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Minimized bool
	Maximized bool
	Z         int
}

// Rect returns the stored (unmaximized) rectangle
func (e Entity) Rect() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Spec returns the entity as a launch spec, which reopens it unchanged
func (e Entity) Spec() Spec {
	return Spec{
		ID:        e.ID,
		Title:     e.Title,
		Kind:      e.Kind,
		X:         e.X,
		Y:         e.Y,
		Width:     e.Width,
		Height:    e.Height,
		Minimized: e.Minimized,
		Maximized: e.Maximized,
	}
}

func fromSpec(s Spec, z int) Entity {
	return Entity{
		ID:        s.ID,
		Title:     s.Title,
		Kind:      s.Kind,
		X:         s.X,
		Y:         s.Y,
		Width:     s.Width,
		Height:    s.Height,
		Minimized: s.Minimized,
		Maximized: s.Maximized,
		Z:         z,
	}
}
