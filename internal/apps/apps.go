package apps

import (
	"github.com/kmacinski/folio/internal/content"
	"github.com/kmacinski/folio/internal/ui"
	"github.com/kmacinski/folio/internal/window"
)

// Reloadable bodies accept a new portfolio document
type Reloadable interface {
	SetDocument(doc *content.Document)
}

// New creates the body for an application
func New(k Kind, doc *content.Document, styles ui.Styles, launch Launcher) window.Body {
	if launch == nil {
		launch = Launch
	}
	switch k {
	case Finder:
		return NewFinder(doc, styles, launch)
	case Terminal:
		return NewTerminal(styles, launch)
	default:
		return NewPanel(k, doc, styles)
	}
}
