package session

import "sync"

// Mode is the conversational state of a user's session.
type Mode string

const (
	ModeMenu Mode = "menu"
	ModeChat Mode = "chat"
)

// RouteDecision says where an inbound free-text message goes.
type RouteDecision int

const (
	ToMenu RouteDecision = iota
	ToChat
)

// Tracker holds per-user session modes. State is volatile by design: it lives
// for the process lifetime and every user starts over in menu mode after a
// restart.
type Tracker struct {
	mu    sync.RWMutex
	modes map[int64]Mode
}

func NewTracker() *Tracker {
	return &Tracker{modes: make(map[int64]Mode)}
}

// Mode returns the user's current mode, defaulting to menu.
func (t *Tracker) Mode(userID int64) Mode {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if m, ok := t.modes[userID]; ok {
		return m
	}
	return ModeMenu
}

// SetMode records a mode transition for the user.
func (t *Tracker) SetMode(userID int64, m Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.modes[userID] = m
}

// Route decides the path for an inbound free-text message: only a session in
// chat mode reaches the generation path, everything else falls back to the
// menu regardless of content.
func (t *Tracker) Route(userID int64) RouteDecision {
	if t.Mode(userID) == ModeChat {
		return ToChat
	}
	return ToMenu
}
