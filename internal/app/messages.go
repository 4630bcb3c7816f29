package app

import (
	"time"

	"github.com/kmacinski/folio/internal/content"
)

// TickMsg drives the menu bar clock
type TickMsg time.Time

// ContentChangedMsg is sent by the watcher when the portfolio file changes
type ContentChangedMsg struct{}

// ContentLoadedMsg carries a freshly parsed portfolio document
type ContentLoadedMsg struct {
	Doc *content.Document
}

// ClipboardMsg reports the result of a copy
type ClipboardMsg struct {
	Text string
	Err  error
}

// ErrorMsg is sent when a background operation fails
type ErrorMsg struct {
	Err error
}
