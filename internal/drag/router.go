// Package drag turns press-move-release pointer gestures on a handle into
// absolute container positions. Capture is routed through a Router so a
// drag keeps receiving events after the pointer leaves the window.
package drag

import "errors"

var (
	// ErrAlreadyCaptured is returned when another owner holds the pointer
	ErrAlreadyCaptured = errors.New("pointer already captured")
	// ErrNotCaptured is returned when releasing a capture that is gone
	ErrNotCaptured = errors.New("pointer not captured")
)

// Router grants exclusive pointer routing to one owner at a time
type Router struct {
	owner string
	token uint64
	held  bool
}

// NewRouter creates a router with no capture
func NewRouter() *Router {
	return &Router{}
}

// Capture routes all pointer events to owner until the grab is released
func (r *Router) Capture(owner string) (*Grab, error) {
	if r.held && r.owner != owner {
		return nil, ErrAlreadyCaptured
	}
	r.token++
	r.owner = owner
	r.held = true
	return &Grab{router: r, owner: owner, token: r.token}, nil
}

// Owner reports who holds the capture, if anyone
func (r *Router) Owner() (string, bool) {
	return r.owner, r.held
}

// Reset drops any capture. Outstanding grabs become stale and their
// Release is a no-op.
func (r *Router) Reset() {
	r.held = false
	r.owner = ""
	r.token++
}

func (r *Router) release(g *Grab) error {
	if !r.held || r.token != g.token {
		return ErrNotCaptured
	}
	r.held = false
	r.owner = ""
	return nil
}

// Grab is one scoped pointer capture
type Grab struct {
	router   *Router
	owner    string
	token    uint64
	released bool
}

// Owner returns the owner the grab was issued to
func (g *Grab) Owner() string {
	return g.owner
}

// Release ends the capture. It is safe to call more than once and after
// the router has already dropped the capture.
func (g *Grab) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	// a stale grab means someone else already released; nothing to undo
	_ = g.router.release(g)
}
