package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/kmacinski/folio/internal/geom"
	"github.com/kmacinski/folio/internal/keys"
	"github.com/kmacinski/folio/internal/layout"
)

const (
	menuLogo   = " ◆ "
	clockFmt   = "3:04 PM"
	menuIndent = 3 // width of menuLogo
)

type menuItem struct {
	label    string
	shortcut key.Binding
	action   func(a *App) tea.Cmd
}

type menu struct {
	title string
	items []menuItem
}

// menuBar lists the menus in display order
var menuBar = []menu{
	{title: "Portfolio", items: []menuItem{
		{label: "About This Portfolio", action: func(a *App) tea.Cmd {
			a.state.ToggleModal(ModalAbout)
			return nil
		}},
		{label: "Quit", shortcut: keys.DefaultKeyMap.Quit, action: func(a *App) tea.Cmd {
			return tea.Quit
		}},
	}},
	{title: "File", items: []menuItem{
		{label: "New Finder Window", shortcut: keys.DefaultKeyMap.NewFinder, action: func(a *App) tea.Cmd {
			a.newFinder()
			return nil
		}},
		{label: "Close Window", shortcut: keys.DefaultKeyMap.CloseWindow, action: func(a *App) tea.Cmd {
			a.closeTopmost()
			return nil
		}},
		{label: "Close All", action: func(a *App) tea.Cmd {
			a.requestCloseAll()
			return nil
		}},
	}},
	{title: "Edit", items: []menuItem{
		{label: "Copy", shortcut: keys.DefaultKeyMap.Copy, action: func(a *App) tea.Cmd {
			return a.copySelection()
		}},
		{label: "Select All", shortcut: keys.DefaultKeyMap.SelectAll, action: func(a *App) tea.Cmd {
			a.selectAll()
			return nil
		}},
	}},
	{title: "View", items: []menuItem{
		{label: "Zoom In", shortcut: keys.DefaultKeyMap.ZoomIn, action: func(a *App) tea.Cmd {
			a.zoom(a.layout.ZoomIn)
			return nil
		}},
		{label: "Zoom Out", shortcut: keys.DefaultKeyMap.ZoomOut, action: func(a *App) tea.Cmd {
			a.zoom(a.layout.ZoomOut)
			return nil
		}},
		{label: "Actual Size", shortcut: keys.DefaultKeyMap.ResetZoom, action: func(a *App) tea.Cmd {
			a.zoom(a.layout.ResetZoom)
			return nil
		}},
	}},
	{title: "Window", items: []menuItem{
		{label: "Minimize All", action: func(a *App) tea.Cmd {
			a.store.MinimizeAll()
			return nil
		}},
		{label: "Bring All to Front", action: func(a *App) tea.Cmd {
			a.store.BringAllToFront()
			return nil
		}},
	}},
	{title: "Help", items: []menuItem{
		{label: "Keyboard Shortcuts", shortcut: keys.DefaultKeyMap.Help, action: func(a *App) tea.Cmd {
			a.state.ToggleModal(ModalHelp)
			return nil
		}},
	}},
}

// menuSpan returns the columns [start, end) of a menu title
func menuSpan(index int) (int, int) {
	start := menuIndent
	for i := 0; i < index; i++ {
		start += len(menuBar[i].title) + 2
	}
	return start, start + len(menuBar[index].title) + 2
}

// menuTitleAt returns the menu whose title covers the cell
func (a *App) menuTitleAt(p geom.CellPoint) (int, bool) {
	if !a.layout.InMenuBar(p.Y) {
		return 0, false
	}
	for i := range menuBar {
		if start, end := menuSpan(i); p.X >= start && p.X < end {
			return i, true
		}
	}
	return 0, false
}

func (a *App) renderMenuBar() string {
	rows := a.layout.Metrics().MenuBarRows
	if rows == 0 {
		return ""
	}
	s := a.styles

	var left strings.Builder
	left.WriteString(s.MenuBar.Render(menuLogo))
	for i, m := range menuBar {
		style := s.MenuTitle
		if i == a.state.OpenMenu {
			style = s.MenuTitleOpen
		}
		if i == 0 {
			style = style.Bold(true)
		}
		left.WriteString(style.Render(" " + m.title + " "))
	}

	right := a.now.Format(clockFmt) + " "
	if a.state.Status != "" {
		right = a.state.Status + "   " + right
	}
	right = s.MenuBar.Render(right)

	line := left.String()
	gap := a.width - ansi.StringWidth(line) - ansi.StringWidth(right)
	if gap < 1 {
		line = ansi.Truncate(line+" "+right, a.width, "")
	} else {
		line += s.MenuBar.Render(strings.Repeat(" ", gap)) + right
	}

	lines := []string{line}
	for i := 1; i < rows; i++ {
		lines = append(lines, s.MenuBar.Render(strings.Repeat(" ", a.width)))
	}
	return strings.Join(lines, "\n")
}

// dropdownRect is where the open menu's dropdown is painted
func (a *App) dropdownRect() (geom.CellRect, []string) {
	m := menuBar[a.state.OpenMenu]

	labelW, keyW := 0, 0
	for _, it := range m.items {
		labelW = max(labelW, ansi.StringWidth(it.label))
		keyW = max(keyW, ansi.StringWidth(it.shortcut.Help().Key))
	}

	lines := make([]string, len(m.items))
	for i, it := range m.items {
		label := it.label + strings.Repeat(" ", labelW-ansi.StringWidth(it.label))
		hint := it.shortcut.Help().Key
		hint = strings.Repeat(" ", keyW-ansi.StringWidth(hint)) + hint
		lines[i] = " " + a.styles.MenuItem.Render(label) + "  " + a.styles.MenuShortcut.Render(hint) + " "
	}

	start, _ := menuSpan(a.state.OpenMenu)
	inner := labelW + keyW + 4
	return geom.CellRect{
		X: start,
		Y: a.layout.Metrics().MenuBarRows,
		W: inner + 2,
		H: len(m.items) + 2,
	}, lines
}

func (a *App) dropdownLayer() layout.Layer {
	rect, lines := a.dropdownRect()
	return layout.Layer{
		Rect:    rect,
		Content: a.styles.MenuDropdown.Width(rect.W - 2).Render(strings.Join(lines, "\n")),
	}
}

// dropdownItemAt returns the dropdown item under the cell
func (a *App) dropdownItemAt(p geom.CellPoint) (menuItem, bool) {
	if !a.state.MenuOpen() {
		return menuItem{}, false
	}
	rect, _ := a.dropdownRect()
	if !rect.Contains(p) {
		return menuItem{}, false
	}
	local := rect.Local(p)
	row := local.Y - 1
	items := menuBar[a.state.OpenMenu].items
	if row < 0 || row >= len(items) || local.X == 0 || local.X == rect.W-1 {
		return menuItem{}, false
	}
	return items[row], true
}
