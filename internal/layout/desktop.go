package layout

import (
	"math"

	"github.com/kmacinski/folio/internal/geom"
)

// Desktop is the logical desktop at one zoom level: the full viewport plus
// the strips reserved by the menu bar (top) and the dock (bottom)
type Desktop struct {
	Viewport geom.Size
	MenuBar  float64
	Dock     float64
}

// Clamp keeps a window of the given size inside the desktop bounds: left
// edge at or right of 0, top edge below the menu bar, right edge inside the
// viewport, bottom edge above the dock.
func (d Desktop) Clamp(raw geom.Point, size geom.Size) geom.Point {
	maxX := math.Max(0, d.Viewport.W-size.W)
	maxY := math.Max(d.MenuBar, d.Viewport.H-size.H-d.Dock)
	return geom.Point{
		X: geom.Clamp(raw.X, 0, maxX),
		Y: geom.Clamp(raw.Y, d.MenuBar, maxY),
	}
}

// Maximized is the rectangle a maximized window fills
func (d Desktop) Maximized() geom.Rect {
	return geom.Rect{
		X: 0,
		Y: d.MenuBar,
		W: d.Viewport.W,
		H: math.Max(0, d.Viewport.H-d.MenuBar-d.Dock),
	}
}

// Centered returns the top-left for a window of the given width centered
// horizontally, offset rows below the menu bar
func (d Desktop) Centered(size geom.Size, offset float64) geom.Point {
	return geom.Point{
		X: math.Max(0, math.Floor(d.Viewport.W/2-size.W/2)),
		Y: d.MenuBar + offset,
	}
}
