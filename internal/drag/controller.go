package drag

import (
	"time"

	"github.com/kmacinski/folio/internal/clock"
	"github.com/kmacinski/folio/internal/geom"
)

// DefaultDoubleActivate is the longest gap between two handle presses
// that still counts as a double activation
const DefaultDoubleActivate = 400 * time.Millisecond

// Hit classifies a cell relative to the bound container
type Hit int

const (
	HitNone Hit = iota
	HitHandle
	HitControl
	HitBody
)

// State is the controller phase
type State int

const (
	Idle State = iota
	Dragging
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Outcome reports what a press did
type Outcome int

const (
	Ignored Outcome = iota
	Started
	DoubleActivated
)

// Target is the container a controller is bound to
type Target interface {
	// Origin is the container's current top-left corner.
	Origin() geom.Point
	// HitTest classifies an absolute cell.
	HitTest(p geom.CellPoint) Hit
}

// Effects suppresses global UI side effects (grab cursor, text selection)
// for the duration of a drag. Begin returns the function that undoes them.
type Effects interface {
	Begin() (restore func())
}

// EffectsFunc adapts a function to Effects
type EffectsFunc func() func()

// Begin calls f
func (f EffectsFunc) Begin() func() {
	return f()
}

// Event is one pointer event in both coordinate systems
type Event struct {
	Cell    geom.CellPoint
	Pos     geom.Point
	Primary bool
}

// Config binds a controller to its container
type Config struct {
	Owner            string
	Router           *Router
	Target           Target
	OnDrag           func(geom.Point)
	OnDoubleActivate func()
	Effects          Effects
	Clock            clock.Clock
	DoubleActivate   time.Duration
}

// Controller is the idle/dragging state machine for one handle
type Controller struct {
	cfg     Config
	enabled bool
	state   State

	grab    *Grab
	offset  geom.Point
	restore func()

	lastPress time.Time
	lastCell  geom.CellPoint
	pressed   bool
}

// New creates an idle, enabled controller
func New(cfg Config) *Controller {
	if cfg.Clock == nil {
		cfg.Clock = clock.RealClock{}
	}
	if cfg.DoubleActivate <= 0 {
		cfg.DoubleActivate = DefaultDoubleActivate
	}
	if cfg.Router == nil {
		cfg.Router = NewRouter()
	}
	return &Controller{cfg: cfg, enabled: true}
}

// State returns the current phase
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a gesture is in flight
func (c *Controller) Dragging() bool {
	return c.state == Dragging
}

// Offset is the press point relative to the container origin, held for
// the whole gesture
func (c *Controller) Offset() geom.Point {
	return c.offset
}

// SetEnabled turns drag starts on or off. Disabling cancels a live drag;
// double activation keeps working so a maximized window can be restored.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.Cancel()
	}
}

// Press handles a button press. Only a primary press on the handle itself
// qualifies; controls nested in the handle keep their clicks.
func (c *Controller) Press(ev Event) Outcome {
	if !ev.Primary || c.state == Dragging {
		return Ignored
	}
	if c.cfg.Target.HitTest(ev.Cell) != HitHandle {
		c.pressed = false
		return Ignored
	}

	now := c.cfg.Clock.Now()
	if c.pressed && ev.Cell == c.lastCell && now.Sub(c.lastPress) <= c.cfg.DoubleActivate {
		c.pressed = false
		if c.cfg.OnDoubleActivate != nil {
			c.cfg.OnDoubleActivate()
		}
		return DoubleActivated
	}
	c.pressed = true
	c.lastPress = now
	c.lastCell = ev.Cell
	if !c.enabled {
		return Ignored
	}

	grab, err := c.cfg.Router.Capture(c.cfg.Owner)
	if err != nil {
		return Ignored
	}
	c.grab = grab
	c.offset = ev.Pos.Sub(c.cfg.Target.Origin())
	c.state = Dragging
	if c.cfg.Effects != nil {
		c.restore = c.cfg.Effects.Begin()
	}
	return Started
}

// Move reports the new container origin for a pointer position
func (c *Controller) Move(ev Event) bool {
	if c.state != Dragging {
		return false
	}
	if c.cfg.OnDrag != nil {
		c.cfg.OnDrag(ev.Pos.Sub(c.offset))
	}
	return true
}

// Release ends the gesture normally
func (c *Controller) Release(Event) bool {
	return c.end()
}

// Cancel ends the gesture without a final position
func (c *Controller) Cancel() bool {
	return c.end()
}

// Teardown is called when the owning view goes away. It never leaves a
// capture or suppressed effects behind.
func (c *Controller) Teardown() {
	c.end()
	c.pressed = false
}

func (c *Controller) end() bool {
	if c.state != Dragging {
		return false
	}
	c.state = Idle
	c.grab.Release()
	c.grab = nil
	if c.restore != nil {
		c.restore()
		c.restore = nil
	}
	return true
}
