package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// emphasisExpiredMsg ends an emphasis window. The generation lets the
// machine ignore timers made stale by a newer selection change.
type emphasisExpiredMsg struct {
	gen int
}

// Emphasis is the two-state machine behind the short celebratory highlight
// after a selection change: idle -> emphasizing on Trigger, emphasizing ->
// idle when the window's timer fires. Re-triggering while emphasizing
// restarts the window instead of stacking a second one, so rapid
// reselection reads as one continuous emphasis period.
//
// Expiry arrives as a message through the event loop; when the program
// shuts down, pending ticks are discarded with it, so there is no state
// update after teardown to defend against.
type Emphasis struct {
	window time.Duration
	active bool
	gen    int
}

// NewEmphasis creates a machine with the given window duration.
func NewEmphasis(window time.Duration) *Emphasis {
	return &Emphasis{window: window}
}

// Active reports whether the flag is currently lit.
func (e *Emphasis) Active() bool {
	return e.active
}

// Trigger enters (or re-enters) the emphasizing state and returns the
// command whose message will end this window. Any previously scheduled
// expiry becomes stale and is ignored on arrival.
func (e *Emphasis) Trigger() tea.Cmd {
	e.active = true
	e.gen++
	gen := e.gen

	return tea.Tick(e.window, func(time.Time) tea.Msg {
		return emphasisExpiredMsg{gen: gen}
	})
}

// Expire handles an expiry message, returning true when it ended the
// current window. Stale generations are dropped without a state change.
func (e *Emphasis) Expire(msg emphasisExpiredMsg) bool {
	if msg.gen != e.gen || !e.active {
		return false
	}
	e.active = false
	return true
}
