package window

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/kmacinski/folio/internal/clock"
	"github.com/kmacinski/folio/internal/drag"
	"github.com/kmacinski/folio/internal/geom"
	"github.com/kmacinski/folio/internal/layout"
	"github.com/kmacinski/folio/internal/ui"
	"github.com/kmacinski/folio/internal/wm"
)

// Control identifies a title bar button
type Control int

const (
	ControlNone Control = iota
	ControlClose
	ControlMinimize
	ControlMaximize
)

// Title bar columns, relative to the frame's left edge. The whole cluster
// up to controlsWidth belongs to the controls and never starts a drag.
const (
	closeCol      = 1
	minimizeCol   = 3
	maximizeCol   = 5
	controlsWidth = 7
)

const controlGlyph = "●"

// Surface maps between the logical desktop and terminal cells
type Surface interface {
	Desktop() layout.Desktop
	ToCells(r geom.Rect) geom.CellRect
	ToLogical(p geom.CellPoint) geom.Point
}

// Config binds a frame to its entity
type Config struct {
	ID          string
	Store       *wm.Store
	Surface     Surface
	Router      *drag.Router
	Body        Body
	Styles      ui.Styles
	Clock       clock.Clock
	DoubleClick time.Duration
	Logger      zerolog.Logger
}

// Frame is the view of one window entity. It reads geometry from the store
// on every call and writes back only through store operations.
type Frame struct {
	id       string
	store    *wm.Store
	surface  Surface
	body     Body
	styles   ui.Styles
	ctrl     *drag.Controller
	grabbing bool
	selected bool
	log      zerolog.Logger
}

// New creates a frame for the entity with the given id
func New(cfg Config) *Frame {
	f := &Frame{
		id:      cfg.ID,
		store:   cfg.Store,
		surface: cfg.Surface,
		body:    cfg.Body,
		styles:  cfg.Styles,
		log:     cfg.Logger.With().Str("component", "window").Str("id", cfg.ID).Logger(),
	}
	f.ctrl = drag.New(drag.Config{
		Owner:            cfg.ID,
		Router:           cfg.Router,
		Target:           f,
		OnDrag:           f.moveTo,
		OnDoubleActivate: f.toggleMaximize,
		Effects:          drag.EffectsFunc(f.beginGrab),
		Clock:            cfg.Clock,
		DoubleActivate:   cfg.DoubleClick,
	})
	f.syncEnabled()
	return f
}

// ID returns the entity id
func (f *Frame) ID() string {
	return f.id
}

// Body returns the window body
func (f *Frame) Body() Body {
	return f.body
}

// Focused reports whether the body has focus
func (f *Frame) Focused() bool {
	return f.body.Focused()
}

// SetFocus sets the body focus
func (f *Frame) SetFocus(focused bool) {
	f.body.SetFocus(focused)
}

// Selected reports whether the body is highlighted by select-all
func (f *Frame) Selected() bool {
	return f.selected
}

// SetSelected sets the select-all highlight
func (f *Frame) SetSelected(selected bool) {
	f.selected = selected
}

// Dragging reports whether the title bar is being dragged
func (f *Frame) Dragging() bool {
	return f.ctrl.Dragging()
}

// Rect returns the logical rectangle the frame occupies. A maximized window
// fills the desktop while its stored rectangle stays untouched.
func (f *Frame) Rect() geom.Rect {
	e, ok := f.store.Get(f.id)
	if !ok {
		return geom.Rect{}
	}
	if e.Maximized {
		return f.surface.Desktop().Maximized()
	}
	return e.Rect()
}

// Cells returns the frame rectangle on the terminal
func (f *Frame) Cells() geom.CellRect {
	return f.surface.ToCells(f.Rect())
}

// Origin implements drag.Target
func (f *Frame) Origin() geom.Point {
	return f.Rect().Origin()
}

// HitTest implements drag.Target
func (f *Frame) HitTest(p geom.CellPoint) drag.Hit {
	cr := f.Cells()
	if !cr.Contains(p) {
		return drag.HitNone
	}
	local := cr.Local(p)
	switch {
	case local.Y == 0 && local.X < controlsWidth:
		return drag.HitControl
	case local.Y == 0:
		return drag.HitHandle
	default:
		return drag.HitBody
	}
}

// ControlAt returns the button under an absolute cell
func (f *Frame) ControlAt(p geom.CellPoint) Control {
	cr := f.Cells()
	if !cr.Contains(p) {
		return ControlNone
	}
	local := cr.Local(p)
	if local.Y != 0 {
		return ControlNone
	}
	switch local.X {
	case closeCol:
		return ControlClose
	case minimizeCol:
		return ControlMinimize
	case maximizeCol:
		return ControlMaximize
	default:
		return ControlNone
	}
}

// Update handles input routed to this window
func (f *Frame) Update(msg tea.Msg) tea.Cmd {
	f.syncEnabled()

	if msg, ok := msg.(tea.MouseMsg); ok {
		return f.handleMouse(msg)
	}

	var cmd tea.Cmd
	f.body, cmd = f.body.Update(msg)
	return cmd
}

// Cancel ends a live drag without a final position
func (f *Frame) Cancel() {
	f.ctrl.Cancel()
}

// Teardown releases everything the frame holds. The frame must not be
// used afterwards.
func (f *Frame) Teardown() {
	f.ctrl.Teardown()
}

func (f *Frame) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev := f.event(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			switch f.HitTest(ev.Cell) {
			case drag.HitControl:
				f.pressControl(f.ControlAt(ev.Cell))
				return nil
			case drag.HitHandle:
				f.ctrl.Press(ev)
				return nil
			}
		}
		if f.HitTest(ev.Cell) == drag.HitBody || tea.MouseEvent(msg).IsWheel() {
			return f.forward(msg)
		}
	case tea.MouseActionMotion:
		f.ctrl.Move(ev)
	case tea.MouseActionRelease:
		f.ctrl.Release(ev)
	}
	return nil
}

// forward hands a mouse event to the body in body-local cells
func (f *Frame) forward(msg tea.MouseMsg) tea.Cmd {
	cr := f.Cells()
	msg.X -= cr.X + 1
	msg.Y -= cr.Y + 1

	var cmd tea.Cmd
	f.body, cmd = f.body.Update(msg)
	return cmd
}

func (f *Frame) pressControl(c Control) {
	switch c {
	case ControlClose:
		f.ctrl.Teardown()
		f.store.Close(f.id)
		f.log.Debug().Msg("close pressed")
	case ControlMinimize:
		f.ctrl.Cancel()
		f.store.Minimize(f.id)
		f.log.Debug().Msg("minimize pressed")
	case ControlMaximize:
		f.toggleMaximize()
		f.log.Debug().Msg("maximize pressed")
	}
}

func (f *Frame) event(msg tea.MouseMsg) drag.Event {
	cell := geom.CellPoint{X: msg.X, Y: msg.Y}
	return drag.Event{
		Cell:    cell,
		Pos:     f.surface.ToLogical(cell),
		Primary: msg.Button == tea.MouseButtonLeft,
	}
}

// moveTo clamps a raw drag position into the desktop before storing it
func (f *Frame) moveTo(raw geom.Point) {
	e, ok := f.store.Get(f.id)
	if !ok || e.Maximized {
		return
	}
	p := f.surface.Desktop().Clamp(raw, geom.Size{W: e.Width, H: e.Height})
	f.store.Move(f.id, p.X, p.Y)
}

func (f *Frame) toggleMaximize() {
	f.store.ToggleMaximize(f.id)
	f.syncEnabled()
}

// syncEnabled disables dragging while maximized
func (f *Frame) syncEnabled() {
	e, ok := f.store.Get(f.id)
	f.ctrl.SetEnabled(ok && !e.Maximized)
}

func (f *Frame) beginGrab() func() {
	f.grabbing = true
	return func() { f.grabbing = false }
}

// View renders the title bar and the bordered body at the frame's cell size
func (f *Frame) View() string {
	e, ok := f.store.Get(f.id)
	if !ok {
		return ""
	}
	cr := f.Cells()
	if cr.W <= 0 || cr.H <= 0 {
		return ""
	}

	title := f.renderTitleBar(e.Title, cr.W)
	if cr.H == 1 {
		return title
	}

	bodyW := max(1, cr.W-2)
	bodyH := max(1, cr.H-2)
	content := fit(f.body.View(bodyW, bodyH), bodyW, bodyH)

	style := f.styles.WindowUnfocused
	if f.Focused() {
		style = f.styles.WindowFocused
	}
	if f.selected {
		style = style.Background(f.styles.Selected.GetBackground())
	}

	return title + "\n" + style.Width(bodyW).Height(bodyH).Render(content)
}

func (f *Frame) renderTitleBar(title string, width int) string {
	bar := f.styles.TitleBar
	switch {
	case f.grabbing:
		bar = f.styles.TitleBarGrabbing
	case f.Focused():
		bar = f.styles.TitleBarFocused
	}

	gap := bar.Render(" ")
	controls := gap +
		f.styles.CloseButton.Render(controlGlyph) + gap +
		f.styles.MinimizeButton.Render(controlGlyph) + gap +
		f.styles.MaximizeButton.Render(controlGlyph) + gap

	rest := width - controlsWidth
	if rest <= 0 {
		return ansi.Truncate(controls, width, "")
	}
	label := bar.Width(rest).Align(lipgloss.Center).Render(ansi.Truncate(title, rest, "…"))
	return controls + label
}

// fit cuts content to at most h lines of at most w cells
func fit(content string, w, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, w, "")
	}
	return strings.Join(lines, "\n")
}
