package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/folio/internal/geom"
	"github.com/kmacinski/folio/internal/layout"
	"github.com/kmacinski/folio/internal/window"
)

// View renders the application
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	scene := layout.Scene{
		Background: a.styles.Desktop,
		MenuBar:    a.renderMenuBar(),
		Dock:       a.renderDock(),
	}

	for _, e := range a.store.Windows().Visible() {
		f, ok := a.frames[e.ID]
		if !ok {
			continue
		}
		scene.Windows = append(scene.Windows, layout.Layer{Rect: f.Cells(), Content: f.View()})
	}

	if a.state.MenuOpen() {
		scene.Overlays = append(scene.Overlays, a.dropdownLayer())
	}
	if modal := a.modal(); modal != nil {
		scene.Overlays = append(scene.Overlays, a.modalLayer(modal))
	}

	return a.layout.Render(scene)
}

// modal returns the body of the active dialog
func (a *App) modal() window.Body {
	switch a.state.ActiveModal {
	case ModalHelp:
		return a.help
	case ModalAbout:
		lines := []string{a.doc.Tagline, ""}
		if a.version != "" {
			lines = append(lines, "Version "+a.version)
		}
		if a.doc.URL != "" {
			lines = append(lines, a.doc.URL)
		}
		return window.NewDialog(ModalAbout, a.doc.Name, lines, "Press Esc to close", a.styles)
	case ModalCloseAll:
		return window.NewDialog(ModalCloseAll, "Close All Windows?",
			[]string{"Every open window will be closed."},
			"y confirm · n cancel", a.styles)
	default:
		return nil
	}
}

// modalLayer centers a dialog on the screen
func (a *App) modalLayer(body window.Body) layout.Layer {
	modalWidth := min(50, a.width-4)
	modalHeight := min(26, a.height-4)

	content := body.View(modalWidth, modalHeight)
	w, h := lipgloss.Width(content), lipgloss.Height(content)
	return layout.Layer{
		Rect: geom.CellRect{
			X: max(0, (a.width-w)/2),
			Y: max(0, (a.height-h)/2),
			W: w,
			H: h,
		},
		Content: content,
	}
}
