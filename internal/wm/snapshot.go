package wm

import "sort"

// Snapshot is an immutable view of the store at one revision. The store
// never writes into a slice it has handed out, so snapshots stay valid
// after later mutations.
type Snapshot struct {
	entities []Entity
}

// Len returns the number of tracked windows
func (s Snapshot) Len() int {
	return len(s.entities)
}

// All returns a copy of the entities in insertion order
func (s Snapshot) All() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Get returns the entity with the given id
func (s Snapshot) Get(id string) (Entity, bool) {
	if i := s.index(id); i >= 0 {
		return s.entities[i], true
	}
	return Entity{}, false
}

// Visible returns non-minimized entities sorted by ascending z, which is
// paint order
func (s Snapshot) Visible() []Entity {
	out := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if !e.Minimized {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Stacked returns every entity, minimized included, sorted by ascending z
func (s Snapshot) Stacked() []Entity {
	out := s.All()
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Topmost returns the entity with the highest z, minimized or not
func (s Snapshot) Topmost() (Entity, bool) {
	return topmost(s.entities, false)
}

// TopmostVisible returns the highest non-minimized entity
func (s Snapshot) TopmostVisible() (Entity, bool) {
	return topmost(s.entities, true)
}

func topmost(entities []Entity, visibleOnly bool) (Entity, bool) {
	var (
		best  Entity
		found bool
	)
	for _, e := range entities {
		if visibleOnly && e.Minimized {
			continue
		}
		if !found || e.Z > best.Z {
			best = e
			found = true
		}
	}
	return best, found
}

func (s Snapshot) index(id string) int {
	for i, e := range s.entities {
		if e.ID == id {
			return i
		}
	}
	return -1
}
