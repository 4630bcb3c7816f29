package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/kmacinski/folio/internal/apps"
	"github.com/kmacinski/folio/internal/geom"
)

// Dock indicators
const (
	indicatorOpen      = "•"
	indicatorMinimized = "◦"
	indicatorClosed    = " "
)

type dockSpan struct {
	kind       apps.Kind
	start, end int
}

func (a *App) indicator(k apps.Kind) string {
	e, ok := a.store.Get(string(k))
	switch {
	case !ok:
		return indicatorClosed
	case e.Minimized:
		return indicatorMinimized
	default:
		return indicatorOpen
	}
}

func dockLabel(name, indicator string) string {
	return " " + indicator + name + " "
}

// dockBordered reports whether the dock has room for its frame
func (a *App) dockBordered() bool {
	return a.layout.Metrics().DockRows >= 3
}

// dockLayout returns the left edge of the dock's item row and the column
// span of every item
func (a *App) dockLayout() (int, []dockSpan) {
	items := apps.All()
	inner := 0
	for _, info := range items {
		inner += ansi.StringWidth(dockLabel(info.Name, indicatorClosed))
	}
	boxW := inner
	if a.dockBordered() {
		boxW += 2
	}
	left := max(0, (a.width-boxW)/2)

	x := left
	if a.dockBordered() {
		x++
	}
	spans := make([]dockSpan, len(items))
	for i, info := range items {
		w := ansi.StringWidth(dockLabel(info.Name, indicatorClosed))
		spans[i] = dockSpan{kind: info.Kind, start: x, end: x + w}
		x += w
	}
	return left, spans
}

// dockItemAt returns the application under the cell
func (a *App) dockItemAt(p geom.CellPoint) (apps.Kind, bool) {
	if !a.layout.InDock(p.Y) {
		return "", false
	}
	_, spans := a.dockLayout()
	for _, s := range spans {
		if p.X >= s.start && p.X < s.end {
			return s.kind, true
		}
	}
	return "", false
}

func (a *App) renderDock() string {
	rows := a.layout.Metrics().DockRows
	if rows == 0 {
		return ""
	}
	s := a.styles

	var items strings.Builder
	for _, info := range apps.All() {
		ind := a.indicator(info.Kind)
		style := s.DockItem
		if ind != indicatorClosed {
			style = s.DockItemOpen
		}
		items.WriteString(style.Render(" "))
		items.WriteString(s.DockIndicator.Render(ind))
		items.WriteString(style.Render(info.Name + " "))
	}

	left, _ := a.dockLayout()
	pad := strings.Repeat(" ", left)

	dock := items.String()
	if a.dockBordered() {
		dock = s.Dock.Render(dock)
	}

	lines := strings.Split(dock, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	// Center the item row vertically in a taller reservation
	for len(lines) < rows {
		lines = append([]string{""}, lines...)
		if len(lines) < rows {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}
