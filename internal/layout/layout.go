// Package layout owns the desktop geometry (viewport, menu bar and dock
// reservations, zoom) and composites windows onto the terminal.
package layout

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kmacinski/folio/internal/geom"
)

// Metrics are the fixed reservations in terminal rows
type Metrics struct {
	MenuBarRows int
	DockRows    int
}

// DefaultMetrics reserves one row for the menu bar and three for the dock
var DefaultMetrics = Metrics{MenuBarRows: 1, DockRows: 3}

// ZoomConfig bounds the page zoom
type ZoomConfig struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultZoom matches browser-like zoom steps
var DefaultZoom = ZoomConfig{Min: 0.5, Max: 2.0, Step: 0.1}

// Layer is one rectangle of pre-rendered content
type Layer struct {
	Rect    geom.CellRect
	Content string
}

// Scene is everything painted in one frame, bottom to top: background,
// windows, menu bar, dock, overlays
type Scene struct {
	Background lipgloss.Style
	Windows    []Layer
	MenuBar    string
	Dock       string
	Overlays   []Layer
}

const resetStyle = "\x1b[0m"

// Manager handles desktop sizing, zoom and rendering
type Manager struct {
	metrics Metrics
	zoomCfg ZoomConfig
	zoom    float64
	width   int
	height  int
}

// NewManager creates a new layout manager at zoom 1
func NewManager(metrics Metrics, zoom ZoomConfig) *Manager {
	return &Manager{
		metrics: metrics,
		zoomCfg: zoom,
		zoom:    1,
	}
}

// Resize updates the terminal dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Width returns the terminal width in cells
func (m *Manager) Width() int {
	return m.width
}

// Height returns the terminal height in cells
func (m *Manager) Height() int {
	return m.height
}

// Metrics returns the row reservations
func (m *Manager) Metrics() Metrics {
	return m.metrics
}

// Zoom returns the current page zoom
func (m *Manager) Zoom() float64 {
	return m.zoom
}

// ZoomIn increases the zoom by one step, up to the maximum
func (m *Manager) ZoomIn() {
	m.setZoom(m.zoom + m.zoomCfg.Step)
}

// ZoomOut decreases the zoom by one step, down to the minimum
func (m *Manager) ZoomOut() {
	m.setZoom(m.zoom - m.zoomCfg.Step)
}

// ResetZoom returns to actual size
func (m *Manager) ResetZoom() {
	m.zoom = 1
}

func (m *Manager) setZoom(z float64) {
	z = math.Round(z*100) / 100
	m.zoom = geom.Clamp(z, m.zoomCfg.Min, m.zoomCfg.Max)
}

// Desktop returns the logical desktop at the current zoom. Zooming in
// shrinks the logical viewport the way browser zoom shrinks the page.
func (m *Manager) Desktop() Desktop {
	return Desktop{
		Viewport: geom.Size{W: float64(m.width) / m.zoom, H: float64(m.height) / m.zoom},
		MenuBar:  float64(m.metrics.MenuBarRows) / m.zoom,
		Dock:     float64(m.metrics.DockRows) / m.zoom,
	}
}

// ToCells projects a logical rectangle onto the terminal
func (m *Manager) ToCells(r geom.Rect) geom.CellRect {
	return geom.Scale(r, m.zoom)
}

// ToLogical converts a terminal cell to logical coordinates
func (m *Manager) ToLogical(p geom.CellPoint) geom.Point {
	return geom.Unscale(p, m.zoom)
}

// InMenuBar reports whether the row belongs to the menu bar strip
func (m *Manager) InMenuBar(y int) bool {
	return y >= 0 && y < m.metrics.MenuBarRows
}

// InDock reports whether the row belongs to the dock strip
func (m *Manager) InDock(y int) bool {
	return y >= m.height-m.metrics.DockRows && y < m.height
}

// Render paints a scene
func (m *Manager) Render(scene Scene) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	blank := scene.Background.Width(m.width).Render("")
	canvas := make([]string, m.height)
	for i := range canvas {
		canvas[i] = blank
	}

	for _, w := range scene.Windows {
		m.paint(canvas, w)
	}
	m.paint(canvas, Layer{Rect: geom.CellRect{X: 0, Y: 0, W: m.width, H: m.metrics.MenuBarRows}, Content: scene.MenuBar})
	dockY := m.height - m.metrics.DockRows
	m.paint(canvas, Layer{Rect: geom.CellRect{X: 0, Y: dockY, W: m.width, H: m.metrics.DockRows}, Content: scene.Dock})
	for _, o := range scene.Overlays {
		m.paint(canvas, o)
	}

	return strings.Join(canvas, "\n")
}

// paint overlays a layer onto the canvas, clipping at every edge
func (m *Manager) paint(canvas []string, l Layer) {
	if l.Content == "" {
		return
	}
	for i, line := range strings.Split(l.Content, "\n") {
		if i >= l.Rect.H {
			break
		}
		y := l.Rect.Y + i
		if y < 0 || y >= len(canvas) {
			continue
		}
		x := l.Rect.X
		seg := line
		if x < 0 {
			seg = ansi.TruncateLeft(seg, -x, "")
			x = 0
		}
		if x >= m.width {
			continue
		}
		seg = ansi.Truncate(seg, m.width-x, "")
		canvas[y] = splice(canvas[y], seg, x)
	}
}

// splice replaces the cells of row starting at x with seg
func splice(row, seg string, x int) string {
	segW := ansi.StringWidth(seg)
	if segW == 0 {
		return row
	}
	left := ansi.Truncate(row, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(row, x+segW, "")
	return left + resetStyle + seg + resetStyle + right
}
