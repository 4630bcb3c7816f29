package app

import "time"

// Modal names
const (
	ModalHelp     = "help"
	ModalAbout    = "about"
	ModalCloseAll = "close-all"
)

const noMenu = -1

// State holds the shell's UI state. Window state lives in the store.
type State struct {
	// UI
	ActiveModal string // empty if no modal
	OpenMenu    int    // index into the menu bar, noMenu if closed
	SelectedID  string // window highlighted by select-all

	// Status message
	Status      string
	StatusUntil time.Time
}

// NewState creates a new state with defaults
func NewState() *State {
	return &State{OpenMenu: noMenu}
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}

// MenuOpen reports whether a dropdown is showing
func (s *State) MenuOpen() bool {
	return s.OpenMenu != noMenu
}

// ToggleMenu opens the menu at index, or closes it if already open
func (s *State) ToggleMenu(index int) {
	if s.OpenMenu == index {
		s.OpenMenu = noMenu
	} else {
		s.OpenMenu = index
	}
}

// CloseMenu closes any open dropdown
func (s *State) CloseMenu() {
	s.OpenMenu = noMenu
}

// Select highlights a window's body
func (s *State) Select(id string) {
	s.SelectedID = id
}

// ClearSelection removes the highlight
func (s *State) ClearSelection() {
	s.SelectedID = ""
}

// SetStatus shows a transient message until the given time
func (s *State) SetStatus(msg string, until time.Time) {
	s.Status = msg
	s.StatusUntil = until
}

// ExpireStatus clears the status once its time has passed
func (s *State) ExpireStatus(now time.Time) {
	if s.Status != "" && !now.Before(s.StatusUntil) {
		s.Status = ""
	}
}

// CycleWindow returns the window after current in windows, wrapping
// around. An unknown current starts from the first window.
func (s *State) CycleWindow(windows []string, current string, reverse bool) string {
	if len(windows) == 0 {
		return ""
	}
	currentIdx := 0
	for i, w := range windows {
		if w == current {
			currentIdx = i
			break
		}
	}
	if reverse {
		currentIdx = (currentIdx - 1 + len(windows)) % len(windows)
	} else {
		currentIdx = (currentIdx + 1) % len(windows)
	}
	return windows[currentIdx]
}
