// Package wm is the window entity store: the authoritative mapping of
// window id to position, size, flags and stacking order.
//
// Every mutator is a silent no-op for an unknown id. A stale callback from a
// window that has already closed must never resurrect or corrupt state, so
// there is no error to report.
package wm

import "github.com/rs/zerolog"

const (
	// BaseZ is the stacking baseline; the first window gets BaseZ+ZStep
	BaseZ = 99
	// ZStep is the increment between successive stacking keys
	ZStep = 1
)

// Store owns the window collection. It is driven from a single event loop
// and is not safe for concurrent use.
type Store struct {
	snap     Snapshot
	revision uint64
	log      zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for mutation tracing
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l.With().Str("component", "wm").Logger()
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Windows returns the current immutable snapshot
func (s *Store) Windows() Snapshot {
	return s.snap
}

// Revision increases by one for every mutation that changed state
func (s *Store) Revision() uint64 {
	return s.revision
}

// Get returns the entity with the given id
func (s *Store) Get(id string) (Entity, bool) {
	return s.snap.Get(id)
}

// Len returns the number of tracked windows
func (s *Store) Len() int {
	return s.snap.Len()
}

// NextZ returns the stacking key the next raise would assign
func (s *Store) NextZ() int {
	return nextZ(s.snap.entities)
}

// nextZ takes the highest valid key and adds ZStep. Keys below the baseline
// can only come from corruption and are skipped, so one bad value cannot
// pin the counter.
func nextZ(entities []Entity) int {
	maxZ, found := 0, false
	for _, e := range entities {
		if e.Z < BaseZ {
			continue
		}
		if !found || e.Z > maxZ {
			maxZ = e.Z
			found = true
		}
	}
	if !found {
		return BaseZ + ZStep
	}
	return maxZ + ZStep
}

// Open creates a window, or merges spec into an existing window with the
// same id. Either way the window ends up unminimized and on top.
func (s *Store) Open(spec Spec) {
	z := nextZ(s.snap.entities)
	i := s.snap.index(spec.ID)
	if i < 0 {
		next := make([]Entity, len(s.snap.entities), len(s.snap.entities)+1)
		copy(next, s.snap.entities)
		next = append(next, fromSpec(spec, z))
		s.commit(next)
		s.log.Debug().Str("id", spec.ID).Str("kind", spec.Kind).Int("z", z).Msg("window opened")
		return
	}

	merged := fromSpec(spec, z)
	merged.Minimized = false
	s.replace(i, merged)
	s.log.Debug().Str("id", spec.ID).Int("z", z).Msg("window restored")
}

// Close removes the window
func (s *Store) Close(id string) {
	i := s.snap.index(id)
	if i < 0 {
		return
	}
	next := make([]Entity, 0, len(s.snap.entities)-1)
	next = append(next, s.snap.entities[:i]...)
	next = append(next, s.snap.entities[i+1:]...)
	s.commit(next)
	s.log.Debug().Str("id", id).Msg("window closed")
}

// Minimize hides the window without changing its stacking key
func (s *Store) Minimize(id string) {
	i := s.snap.index(id)
	if i < 0 || s.snap.entities[i].Minimized {
		return
	}
	e := s.snap.entities[i]
	e.Minimized = true
	s.replace(i, e)
	s.log.Debug().Str("id", id).Msg("window minimized")
}

// ToggleMaximize flips the maximized flag and raises the window
func (s *Store) ToggleMaximize(id string) {
	i := s.snap.index(id)
	if i < 0 {
		return
	}
	e := s.snap.entities[i]
	e.Maximized = !e.Maximized
	e.Z = nextZ(s.snap.entities)
	s.replace(i, e)
	s.log.Debug().Str("id", id).Bool("maximized", e.Maximized).Int("z", e.Z).Msg("window maximize toggled")
}

// Focus raises the window without touching any other field
func (s *Store) Focus(id string) {
	i := s.snap.index(id)
	if i < 0 {
		return
	}
	e := s.snap.entities[i]
	e.Z = nextZ(s.snap.entities)
	s.replace(i, e)
	s.log.Debug().Str("id", id).Int("z", e.Z).Msg("window focused")
}

// Move overwrites the window position. Callers clamp first.
func (s *Store) Move(id string, x, y float64) {
	i := s.snap.index(id)
	if i < 0 {
		return
	}
	e := s.snap.entities[i]
	if e.X == x && e.Y == y {
		return
	}
	e.X, e.Y = x, y
	s.replace(i, e)
}

// MinimizeAll minimizes every visible window
func (s *Store) MinimizeAll() {
	for _, e := range s.snap.entities {
		s.Minimize(e.ID)
	}
}

// CloseAll removes every window
func (s *Store) CloseAll() {
	if len(s.snap.entities) == 0 {
		return
	}
	s.commit(nil)
	s.log.Debug().Msg("all windows closed")
}

// BringAllToFront focuses every window in its current stacking order, so
// relative order survives while every window gets a fresh key
func (s *Store) BringAllToFront() {
	for _, e := range s.snap.Stacked() {
		s.Focus(e.ID)
	}
}

func (s *Store) replace(i int, e Entity) {
	next := make([]Entity, len(s.snap.entities))
	copy(next, s.snap.entities)
	next[i] = e
	s.commit(next)
}

func (s *Store) commit(entities []Entity) {
	s.snap = Snapshot{entities: entities}
	s.revision++
}
