package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmacinski/folio/internal/geom"
)

func browserDesktop() Desktop {
	return Desktop{Viewport: geom.Size{W: 1280, H: 800}, MenuBar: 28, Dock: 80}
}

func TestDesktop_ClampScenario(t *testing.T) {
	d := browserDesktop()
	got := d.Clamp(geom.Point{X: -50, Y: -50}, geom.Size{W: 800, H: 600})
	assert.Equal(t, geom.Point{X: 0, Y: 28}, got)
}

func TestDesktop_ClampLaw(t *testing.T) {
	d := browserDesktop()
	size := geom.Size{W: 400, H: 300}

	raws := []geom.Point{
		{X: -1e6, Y: -1e6},
		{X: 1e6, Y: 1e6},
		{X: 500, Y: 10},
		{X: 879, Y: 419},
		{X: 881, Y: 421},
		{X: 0, Y: 28},
	}
	for _, raw := range raws {
		got := d.Clamp(raw, size)
		assert.GreaterOrEqual(t, got.X, 0.0)
		assert.LessOrEqual(t, got.X, d.Viewport.W-size.W)
		assert.GreaterOrEqual(t, got.Y, d.MenuBar)
		assert.LessOrEqual(t, got.Y, d.Viewport.H-size.H-d.Dock)
	}
}

func TestDesktop_ClampOversizedWindow(t *testing.T) {
	d := browserDesktop()
	got := d.Clamp(geom.Point{X: 300, Y: 300}, geom.Size{W: 2000, H: 2000})
	assert.Equal(t, geom.Point{X: 0, Y: 28}, got, "oversized windows pin to the top-left of the desktop")
}

func TestDesktop_Maximized(t *testing.T) {
	d := browserDesktop()
	assert.Equal(t, geom.Rect{X: 0, Y: 28, W: 1280, H: 692}, d.Maximized())
}

func TestDesktop_Centered(t *testing.T) {
	d := browserDesktop()
	assert.Equal(t, geom.Point{X: 290, Y: 100}, d.Centered(geom.Size{W: 700, H: 500}, 72))
}

func TestManager_Zoom(t *testing.T) {
	m := NewManager(DefaultMetrics, DefaultZoom)
	m.Resize(120, 40)

	assert.InDelta(t, 1.0, m.Zoom(), 1e-9)
	for i := 0; i < 20; i++ {
		m.ZoomIn()
	}
	assert.InDelta(t, 2.0, m.Zoom(), 1e-9)

	for i := 0; i < 30; i++ {
		m.ZoomOut()
	}
	assert.InDelta(t, 0.5, m.Zoom(), 1e-9)

	m.ResetZoom()
	assert.InDelta(t, 1.0, m.Zoom(), 1e-9)

	m.ZoomIn()
	m.ZoomIn()
	assert.InDelta(t, 1.2, m.Zoom(), 1e-9, "steps do not accumulate float error")
}

func TestManager_DesktopFollowsZoom(t *testing.T) {
	m := NewManager(DefaultMetrics, DefaultZoom)
	m.Resize(120, 40)

	d := m.Desktop()
	assert.Equal(t, geom.Size{W: 120, H: 40}, d.Viewport)
	assert.InDelta(t, 1.0, d.MenuBar, 1e-9)
	assert.InDelta(t, 3.0, d.Dock, 1e-9)

	m.ZoomIn()
	m.ZoomIn()
	d = m.Desktop()
	assert.InDelta(t, 100.0, d.Viewport.W, 1e-9)

	// the menu bar strip projects back onto exactly one row
	top := m.ToCells(geom.Rect{X: 0, Y: d.MenuBar, W: 10, H: 5})
	assert.Equal(t, 1, top.Y)
}

func TestManager_Strips(t *testing.T) {
	m := NewManager(DefaultMetrics, DefaultZoom)
	m.Resize(80, 24)

	assert.True(t, m.InMenuBar(0))
	assert.False(t, m.InMenuBar(1))
	assert.True(t, m.InDock(21))
	assert.True(t, m.InDock(23))
	assert.False(t, m.InDock(20))
}

func TestManager_Render(t *testing.T) {
	m := NewManager(Metrics{MenuBarRows: 1, DockRows: 1}, DefaultZoom)
	m.Resize(10, 5)

	scene := Scene{
		Background: lipgloss.NewStyle(),
		MenuBar:    "menu",
		Dock:       "dock",
		Windows: []Layer{
			{Rect: geom.CellRect{X: 1, Y: 1, W: 4, H: 2}, Content: "aaaa\naaaa"},
			{Rect: geom.CellRect{X: 3, Y: 2, W: 4, H: 2}, Content: "bbbb\nbbbb"},
		},
	}

	lines := strings.Split(ansi.Strip(m.Render(scene)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "menu      ", lines[0])
	assert.Equal(t, " aaaa     ", lines[1])
	assert.Equal(t, " aabbbb   ", lines[2], "later layers paint over earlier ones")
	assert.Equal(t, "   bbbb   ", lines[3])
	assert.Equal(t, "dock      ", lines[4])
}

func TestManager_RenderClipsEdges(t *testing.T) {
	m := NewManager(Metrics{MenuBarRows: 0, DockRows: 0}, DefaultZoom)
	m.Resize(6, 2)

	scene := Scene{
		Background: lipgloss.NewStyle(),
		Windows: []Layer{
			{Rect: geom.CellRect{X: -2, Y: 0, W: 4, H: 1}, Content: "wxyz"},
			{Rect: geom.CellRect{X: 4, Y: 1, W: 4, H: 1}, Content: "1234"},
		},
	}

	lines := strings.Split(ansi.Strip(m.Render(scene)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "yz    ", lines[0])
	assert.Equal(t, "    12", lines[1])
}

func TestManager_RenderEmpty(t *testing.T) {
	m := NewManager(DefaultMetrics, DefaultZoom)
	assert.Empty(t, m.Render(Scene{}))
}
