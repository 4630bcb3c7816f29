// Package geom holds the two coordinate systems of the desktop: logical
// desktop units (float64, zoom independent) and terminal cells (int).
package geom

import "math"

// Point is a logical desktop position
type Point struct {
	X, Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a logical width/height pair
type Size struct {
	W, H float64
}

// Rect is a logical rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's size
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// CellPoint is a terminal cell coordinate
type CellPoint struct {
	X, Y int
}

// CellRect is a rectangle of terminal cells
type CellRect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rectangle
func (r CellRect) Contains(p CellPoint) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Local translates p into coordinates relative to the rectangle's corner
func (r CellRect) Local(p CellPoint) CellPoint {
	return CellPoint{X: p.X - r.X, Y: p.Y - r.Y}
}

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Scale projects a logical rectangle onto cells at the given zoom.
// Edges are rounded independently so adjacent rectangles stay adjacent.
func Scale(r Rect, zoom float64) CellRect {
	x0 := int(math.Round(r.X * zoom))
	y0 := int(math.Round(r.Y * zoom))
	x1 := int(math.Round((r.X + r.W) * zoom))
	y1 := int(math.Round((r.Y + r.H) * zoom))
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Unscale converts a cell position back to logical units
func Unscale(p CellPoint, zoom float64) Point {
	if zoom <= 0 {
		zoom = 1
	}
	return Point{X: float64(p.X) / zoom, Y: float64(p.Y) / zoom}
}
