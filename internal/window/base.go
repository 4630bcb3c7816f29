package window

import "github.com/kmacinski/folio/internal/ui"

// Base provides common functionality for bodies
type Base struct {
	name    string
	focused bool
	styles  ui.Styles
}

// NewBase creates a new base body
func NewBase(name string, styles ui.Styles) Base {
	return Base{
		name:   name,
		styles: styles,
	}
}

// Name returns the body name
func (b *Base) Name() string {
	return b.name
}

// Focused returns whether the body is focused
func (b *Base) Focused() bool {
	return b.focused
}

// SetFocus sets the focus state
func (b *Base) SetFocus(focused bool) {
	b.focused = focused
}

// Styles returns the body styles
func (b *Base) Styles() ui.Styles {
	return b.styles
}
