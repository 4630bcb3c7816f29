package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmacinski/folio/internal/geom"
	"github.com/kmacinski/folio/internal/keys"
	"github.com/kmacinski/folio/internal/window"
)

// handleMouse routes a pointer event. While a window holds the pointer,
// every event goes to it regardless of position.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if owner, ok := a.router.Owner(); ok {
		if f, ok := a.frames[owner]; ok {
			return f.Update(msg)
		}
		a.router.Reset()
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if a.state.ActiveModal != "" {
		return nil
	}

	wheel := tea.MouseEvent(msg).IsWheel()
	if !wheel {
		a.state.ClearSelection()
	}
	p := geom.CellPoint{X: msg.X, Y: msg.Y}

	if a.state.MenuOpen() && !wheel {
		if item, ok := a.dropdownItemAt(p); ok {
			a.state.CloseMenu()
			return item.action(a)
		}
		if i, ok := a.menuTitleAt(p); ok {
			a.state.ToggleMenu(i)
			return nil
		}
		a.state.CloseMenu()
		return nil
	}

	if a.layout.InMenuBar(p.Y) {
		if i, ok := a.menuTitleAt(p); ok && !wheel {
			a.state.ToggleMenu(i)
		}
		return nil
	}

	if a.layout.InDock(p.Y) {
		if k, ok := a.dockItemAt(p); ok && !wheel {
			a.restoreOrOpen(k)
		}
		return nil
	}

	f, ok := a.frameAt(p)
	if !ok {
		return nil
	}
	if msg.Button == tea.MouseButtonLeft {
		a.store.Focus(f.ID())
	}
	return f.Update(msg)
}

// frameAt returns the topmost visible window under the cell
func (a *App) frameAt(p geom.CellPoint) (*window.Frame, bool) {
	visible := a.store.Windows().Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		f, ok := a.frames[visible[i].ID]
		if ok && f.Cells().Contains(p) {
			return f, true
		}
	}
	return nil, false
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Always allow quit
	if key.Matches(msg, keys.DefaultKeyMap.Quit) {
		return tea.Quit
	}

	// Handle modal first
	if a.state.ActiveModal != "" {
		return a.handleModalKey(msg)
	}

	if a.state.MenuOpen() && key.Matches(msg, keys.DefaultKeyMap.Escape) {
		a.state.CloseMenu()
		return nil
	}

	// Global keybindings
	switch {
	case key.Matches(msg, keys.DefaultKeyMap.NewFinder):
		a.newFinder()
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.CloseWindow):
		a.closeTopmost()
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.SelectAll):
		a.selectAll()
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.Copy):
		return a.copySelection()

	case key.Matches(msg, keys.DefaultKeyMap.ZoomIn):
		a.zoom(a.layout.ZoomIn)
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.ZoomOut):
		a.zoom(a.layout.ZoomOut)
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.ResetZoom):
		a.zoom(a.layout.ResetZoom)
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.Help):
		a.state.ToggleModal(ModalHelp)
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.Tab):
		a.cycleFocus(false)
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.ShiftTab):
		a.cycleFocus(true)
		return nil

	case key.Matches(msg, keys.DefaultKeyMap.Escape):
		a.state.ClearSelection()
	}

	// Delegate to focused window
	return a.forwardToTopmost(msg)
}

func (a *App) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.ActiveModal == ModalCloseAll {
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Confirm):
			a.state.CloseModal()
			a.store.CloseAll()
		case key.Matches(msg, keys.DefaultKeyMap.Deny):
			a.state.CloseModal()
		}
		return nil
	}

	// Close modal on C-k or Escape
	if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
		a.state.CloseModal()
	}
	return nil
}

// cycleFocus raises the next visible window in opening order
func (a *App) cycleFocus(reverse bool) {
	snap := a.store.Windows()
	var order []string
	for _, e := range snap.All() {
		if !e.Minimized {
			order = append(order, e.ID)
		}
	}
	top, _ := snap.TopmostVisible()
	if next := a.state.CycleWindow(order, top.ID, reverse); next != "" {
		a.store.Focus(next)
	}
}
